/*
Copyright 2026 The clever-operator Authors.
SPDX-License-Identifier: Apache-2.0
*/

package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// +kubebuilder:object:generate=true

// InstanceSpec pins the add-on to a vendor region and plan.
type InstanceSpec struct {
	// Region is the vendor zone code (e.g. "par", "rbx-hds").
	Region string `json:"region,omitempty"`
	// Plan is the vendor plan code (e.g. "s_mono", "m_ha").
	Plan string `json:"plan,omitempty"`
}

// +kubebuilder:object:generate=true

// Options carries family-specific, optional provisioning toggles. Not every
// field applies to every family; this type does not restrict which fields a
// family accepts.
type Options struct {
	// Version pins the add-on's engine version (e.g. "626" for Redis, "15" for PostgreSql).
	// +kubebuilder:validation:Type:=string
	Version string `json:"version,omitempty"`
	// Encryption requests at-rest encryption, where the family supports it.
	Encryption *bool `json:"encryption,omitempty"`
	// Kibana requests a bundled Kibana instance (ElasticSearch only).
	Kibana *bool `json:"kibana,omitempty"`
	// Apm requests a bundled APM server (ElasticSearch only).
	Apm *bool `json:"apm,omitempty"`
}

// +kubebuilder:object:generate=true

// AddonSpec is the user intent shared by every add-on family. Nothing in
// these types or their validation markers keeps Instance or Options.Version
// from changing after the add-on has been provisioned.
type AddonSpec struct {
	// Organisation is the vendor tenant identifier (opaque string), e.g. "orga_AAAA".
	// +kubebuilder:validation:Required
	Organisation string `json:"organisation"`
	// Instance selects the region and plan. Omitted for families that don't support it.
	Instance *InstanceSpec `json:"instance,omitempty"`
	// Options carries family-specific provisioning toggles. Omitted for families that don't support it.
	Options *Options `json:"options,omitempty"`
	// Variables is an opaque configuration map, used by the config-provider family only.
	Variables map[string]string `json:"variables,omitempty"`
}

// ConditionType identifies a status condition. Currently only Ready is used.
type ConditionType string

const (
	// ConditionTypeReady is the single condition type, the one SetReady writes.
	ConditionTypeReady ConditionType = "Ready"
)

// ConditionStatus is one of True, False or Unknown.
type ConditionStatus string

const (
	ConditionTrue    ConditionStatus = "True"
	ConditionFalse   ConditionStatus = "False"
	ConditionUnknown ConditionStatus = "Unknown"
)

// +kubebuilder:object:generate=true

// Condition is a single status condition entry.
type Condition struct {
	Type ConditionType `json:"type"`
	// +kubebuilder:validation:Enum=True;False;Unknown
	Status             ConditionStatus `json:"status"`
	LastTransitionTime *metav1.Time    `json:"lastTransitionTime,omitempty"`
	Reason             string          `json:"reason,omitempty"`
	Message            string          `json:"message,omitempty"`
}

// +kubebuilder:object:generate=true

// AddonStatus is the controller-managed status shared by every add-on
// family. Each v1 family type uses it directly as its Status field and
// returns it from its GetAddonStatus accessor.
type AddonStatus struct {
	// Addon is the vendor-side add-on identifier once provisioning has been
	// acknowledged; nil beforehand. Authoritative for "has a remote twin?".
	Addon *string `json:"addon,omitempty"`
	// ObservedGeneration is the most recently reconciled .metadata.generation.
	ObservedGeneration int64 `json:"observedGeneration"`
	// LastReconciledAt records when the status below was last computed.
	LastReconciledAt *metav1.Time `json:"lastReconciledAt,omitempty"`
	// Conditions holds the single Ready condition.
	Conditions []Condition `json:"conditions,omitempty"`
}

// SetReady sets (or updates) the Ready condition, returning true if anything changed.
func (s *AddonStatus) SetReady(status ConditionStatus, reason, message string) bool {
	now := metav1.Now()
	for i := range s.Conditions {
		if s.Conditions[i].Type != ConditionTypeReady {
			continue
		}
		changed := s.Conditions[i].Status != status || s.Conditions[i].Reason != reason || s.Conditions[i].Message != message
		if s.Conditions[i].Status != status {
			s.Conditions[i].LastTransitionTime = &now
		}
		s.Conditions[i].Status = status
		s.Conditions[i].Reason = reason
		s.Conditions[i].Message = message
		return changed
	}
	s.Conditions = append(s.Conditions, Condition{
		Type:               ConditionTypeReady,
		Status:             status,
		LastTransitionTime: &now,
		Reason:             reason,
		Message:            message,
	})
	return true
}

// GetAddonID returns the stored vendor add-on id, or "" if provisioning has not been acknowledged yet.
func (s *AddonStatus) GetAddonID() string {
	if s.Addon == nil {
		return ""
	}
	return *s.Addon
}

// SetAddonID records (or clears, when id == "") the vendor add-on id.
func (s *AddonStatus) SetAddonID(id string) {
	if id == "" {
		s.Addon = nil
		return
	}
	s.Addon = &id
}
