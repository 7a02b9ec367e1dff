package models

// EnrollmentStatus defines the lifecycle state of an enrollment
type EnrollmentStatus string

const (
	EnrollmentEnrolled  EnrollmentStatus = "enrolled"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"
	EnrollmentActive    EnrollmentStatus = "active"
)

// DefaultEnrollmentStatus is applied when a request omits the status
const DefaultEnrollmentStatus = EnrollmentActive
