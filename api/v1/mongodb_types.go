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
// +kubebuilder:resource:shortName=mongo
// +kubebuilder:printcolumn:name="Addon",type=string,JSONPath=`.status.addon`
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// MongoDb is the Schema for the mongodbs API.
type MongoDb struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   AddonSpec   `json:"spec,omitempty"`
	Status AddonStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// MongoDbList contains a list of MongoDb.
type MongoDbList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []MongoDb `json:"items"`
}

func (c *MongoDb) GetAddonSpec() *AddonSpec     { return &c.Spec }
func (c *MongoDb) GetAddonStatus() *AddonStatus { return &c.Status }

func init() {
	SchemeBuilder.Register(&MongoDb{}, &MongoDbList{})
}
