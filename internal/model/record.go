// Package model defines the core domain types shared across the application.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EnrollStatus is the tri-state answer to "did the candidate enroll?".
type EnrollStatus string

// Enrollment states. Unknown means the follow-up team has not answered yet.
const (
	EnrollUnknown EnrollStatus = ""
	EnrollYes     EnrollStatus = "Sim"
	EnrollNo      EnrollStatus = "Não"
)

// ResultRecord is the unit of persistence: one admission-exam result for one
// candidate, as written to the results sheet. Records are created by the
// registration workflow and later amended by the follow-up form; they are
// never hard-deleted.
type ResultRecord struct {
	CreatedAt           time.Time
	ID                  string
	Name                string
	Unit                string
	Session             string
	ClassOfInterest     string
	Track               string
	Phone               string
	OriginSchool        string
	Guardian            string
	Notes               string
	Enrolled            EnrollStatus
	AnnualCash          decimal.Decimal
	FirstInstallment    decimal.Decimal
	MonthlyInstallment  decimal.Decimal
	NegotiatedValue     decimal.Decimal
	ExpectedInstallment decimal.Decimal
	MathScore           int
	LangScore           int
	DiscountPct         int
}

// TotalScore returns the combined correct-answer count.
func (r *ResultRecord) TotalScore() int {
	return r.MathScore + r.LangScore
}

// Candidate is one row of the activation source sheet, used to prefill the
// registration form. Read-only from this application's perspective.
type Candidate struct {
	Name            string
	Unit            string
	ContactID       string
	ContactStatus   string
	Contacted       string
	Phone           string
	Email           string
	ClassOfInterest string
	Source          string
	Notes           string
}
