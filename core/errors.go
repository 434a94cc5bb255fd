// Copyright 2025 Saleslens Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidProfile indicates a CompanyProfile failed validation.
	ErrInvalidProfile = errors.New("invalid company profile")

	// ErrEmptyURL indicates the profile URL is empty.
	ErrEmptyURL = errors.New("profile URL cannot be empty")

	// ErrInvalidSectionName indicates an out-of-range SectionName value.
	ErrInvalidSectionName = errors.New("invalid section name")

	// ErrDimensionMismatch indicates profile vectors of unequal dimensionality.
	// This is a programming error, never a recoverable runtime condition.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
