// Package domain contains the core entities of the allocator service: tracked
// applications (the write model), their read projections (application details
// and issue details) and the allocator JSON documents that live in GitHub.
// The types are free of infrastructure concerns so every layer can share them.
package domain
