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
// +kubebuilder:resource:shortName=pg
// +kubebuilder:printcolumn:name="Addon",type=string,JSONPath=`.status.addon`
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// PostgreSql is the Schema for the postgresqls API.
type PostgreSql struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   AddonSpec   `json:"spec,omitempty"`
	Status AddonStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// PostgreSqlList contains a list of PostgreSql.
type PostgreSqlList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []PostgreSql `json:"items"`
}

func (c *PostgreSql) GetAddonSpec() *AddonSpec     { return &c.Spec }
func (c *PostgreSql) GetAddonStatus() *AddonStatus { return &c.Status }

func init() {
	SchemeBuilder.Register(&PostgreSql{}, &PostgreSqlList{})
}
