// Package catalog defines the domain types of the software catalog.
//
// An Entity is a descriptor envelope shaped like a Kubernetes object:
//
//	apiVersion: backstage.io/v1alpha1
//	kind: Component
//	metadata:
//	  name: artist-lookup
//	  namespace: default
//	  labels:
//	    system: public-websites
//	spec:
//	  type: service
//	  lifecycle: production
//
// The uid and generation fields of the metadata are owned by the store: a uid is
// assigned when an entity is first persisted and never changes, and the
// generation starts at 1 and is incremented on every update.
//
// A Location is a registered source (a file, a URL, a repository) that entities
// are read from. Every ingestion attempt for a location is recorded as a
// LocationUpdateLogEvent.
//
// # Errors
//
// Operations on the catalog report failures with the sentinel errors
// ErrNotFound, ErrConflict and ErrInvalidEntity, wrapped with context. Use
// errors.Is to discriminate them.
package catalog
