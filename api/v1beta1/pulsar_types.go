/*
Copyright 2026 The clever-operator Authors.
SPDX-License-Identifier: Apache-2.0
*/

package v1beta1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=pulsar
// +kubebuilder:printcolumn:name="Addon",type=string,JSONPath=`.status.addon`
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// Pulsar is the Schema for the pulsars API.
type Pulsar struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   AddonSpec   `json:"spec,omitempty"`
	Status AddonStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// PulsarList contains a list of Pulsar.
type PulsarList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Pulsar `json:"items"`
}

func (c *Pulsar) GetAddonSpec() *AddonSpec     { return &c.Spec }
func (c *Pulsar) GetAddonStatus() *AddonStatus { return &c.Status }

func init() {
	SchemeBuilder.Register(&Pulsar{}, &PulsarList{})
}
