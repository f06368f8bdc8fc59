// Package domain holds the error vocabulary shared by the company, scoring
// and report packages: sentinel errors for lookup outcomes and
// ValidationError for per-field input problems.
package domain
