/*
Copyright 2026 The clever-operator Authors.
SPDX-License-Identifier: Apache-2.0
*/

package v1beta1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// +kubebuilder:object:generate=true

// InstanceSpec pins the add-on to a vendor region and plan. Nothing in this
// type keeps either field from changing after the add-on has been provisioned.
type InstanceSpec struct {
	Region string `json:"region,omitempty"`
	Plan   string `json:"plan,omitempty"`
}

// +kubebuilder:object:generate=true

// AddonSpec is the user intent for the Pulsar family. It has no options
// block: the type carries no Options field.
type AddonSpec struct {
	// +kubebuilder:validation:Required
	Organisation string        `json:"organisation"`
	Instance     *InstanceSpec `json:"instance,omitempty"`
}

// ConditionType identifies a status condition. Currently only Ready is used.
type ConditionType string

const ConditionTypeReady ConditionType = "Ready"

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

// AddonStatus is the controller-managed status for the Pulsar family.
type AddonStatus struct {
	Addon              *string      `json:"addon,omitempty"`
	ObservedGeneration int64        `json:"observedGeneration"`
	LastReconciledAt   *metav1.Time `json:"lastReconciledAt,omitempty"`
	Conditions         []Condition  `json:"conditions,omitempty"`
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
