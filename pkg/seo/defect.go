// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package seo

// Severity classes a defect by how much it hurts the page.
type Severity string

const (
	SeverityCritical  Severity = "critical"
	SeverityImportant Severity = "important"
	SeverityMinor     Severity = "minor"
)

// Defect is one detected SEO issue. Impact is a negative integer: the number
// of score points lost while the defect stands. FixCost is in abstract
// resource units. Solution, when set, is a literal snippet whose presence
// counts as a fix for the generic validator check.
type Defect struct {
	ID          string
	Severity    Severity
	Title       string
	Description string
	Impact      int
	FixCost     float64
	Line        int
	Solution    string
}
