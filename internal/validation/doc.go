// Creatorlens - Content Analytics and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creatorlens

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide; it caches struct
// metadata and is safe for concurrent use. Field names in messages use the
// struct's json tag, so errors read the same as the request payloads.
//
// Custom tags:
//   - identifier: non-blank string without whitespace, at most 128 bytes
//
// Example:
//
//	type Range struct {
//	    CreatorID string    `json:"creator_id" validate:"identifier"`
//	    Start     time.Time `json:"start"`
//	    End       time.Time `json:"end" validate:"gtefield=Start"`
//	}
//
//	if err := validation.ValidateStruct(&r); err != nil {
//	    return fmt.Errorf("%w: %s", ErrInvalidRequest, err.Error())
//	}
package validation
