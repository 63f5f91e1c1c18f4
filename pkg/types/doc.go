// Package types defines the Contact entity, the ContactRepository
// interface, configuration, and the standard error values shared by every
// layer of the contact directory.
package types
