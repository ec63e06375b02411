/*
Copyright 2026 The clever-operator Authors.
SPDX-License-Identifier: Apache-2.0
*/

// Package v1beta1 contains the v1beta1 API group for api.clever-cloud.com,
// currently holding the Pulsar add-on family.
// +kubebuilder:object:generate=true
// +groupName=api.clever-cloud.com
package v1beta1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

var (
	// GroupVersion is the API group version used for every family registered in this package.
	GroupVersion = schema.GroupVersion{Group: "api.clever-cloud.com", Version: "v1beta1"}

	// SchemeBuilder is used to add go types to the GroupVersionKind scheme.
	SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}

	// AddToScheme adds the types in this group-version to the given scheme.
	AddToScheme = SchemeBuilder.AddToScheme
)
