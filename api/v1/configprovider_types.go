/*
Copyright 2026 The clever-operator Authors.
SPDX-License-Identifier: Apache-2.0
*/

package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=cfg
// +kubebuilder:printcolumn:name="Addon",type=string,JSONPath=`.status.addon`
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// ConfigProvider is the Schema for the configproviders API. Its spec is the
// shared AddonSpec, so it has the same Instance and Options fields as the
// other v1 families; its own payload is the free-form Variables map.
type ConfigProvider struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   AddonSpec   `json:"spec,omitempty"`
	Status AddonStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ConfigProviderList contains a list of ConfigProvider.
type ConfigProviderList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ConfigProvider `json:"items"`
}

func (c *ConfigProvider) GetAddonSpec() *AddonSpec     { return &c.Spec }
func (c *ConfigProvider) GetAddonStatus() *AddonStatus { return &c.Status }

func init() {
	SchemeBuilder.Register(&ConfigProvider{}, &ConfigProviderList{})
}
