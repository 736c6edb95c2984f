package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a case record ID matches nothing in the store
	ErrNotFound = errors.New("case record not found")
	// ErrNoActiveRecord is returned by editor operations while no record is open
	ErrNoActiveRecord = errors.New("no case record is open for editing")
	// ErrUnknownLocationField is returned for a location field other than room, shelf, drawer or box
	ErrUnknownLocationField = errors.New("unknown location field")
	// ErrInvalidStatus is returned for a status other than the two minutation statuses
	ErrInvalidStatus = errors.New("invalid minutation status")
	// ErrStaleSummary is returned when a summary finished after its editor session ended
	ErrStaleSummary = errors.New("summary discarded: editor session changed")
	// ErrStaleAttachment is returned when an upload finished after its editor session ended
	ErrStaleAttachment = errors.New("attachment discarded: editor session changed")
	// ErrScanInProgress is returned when a scan is started while another is running
	ErrScanInProgress = errors.New("scan already in progress")
	// ErrNoCode is returned by a decoder that found nothing to decode
	ErrNoCode = errors.New("no code found")
	// ErrAttachmentTooLarge is returned when an upload exceeds the configured size
	ErrAttachmentTooLarge = errors.New("attachment too large")
)

// NotFoundError carries the ID that was looked up. It matches ErrNotFound.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("case record %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
