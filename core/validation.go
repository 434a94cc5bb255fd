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

import "fmt"

// ValidateSectionName validates that a SectionName has a valid value.
func ValidateSectionName(section SectionName) error {
	if section < SectionCompanyDescription || section > SectionPress {
		return fmt.Errorf("%w: %d", ErrInvalidSectionName, section)
	}
	return nil
}

// ValidateProfile validates a CompanyProfile according to domain rules.
//
// Validation rules:
//   - URL must not be empty
//   - all section embeddings must share one dimensionality
//   - the combined embedding, if present, must match that dimensionality
//   - no section embedding may be empty (absence is expressed by a missing
//     key, never by a zero-length vector)
//
// NOT validated (legitimately empty):
//   - RawContent and PressContent (a failed scrape still yields a profile)
//   - SectionEmbeddings and CombinedEmbedding (nothing substantial to embed)
func ValidateProfile(profile *CompanyProfile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if profile.URL == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyURL)
	}

	dim := len(profile.CombinedEmbedding)
	for section, vector := range profile.SectionEmbeddings {
		if err := ValidateSectionName(section); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
		}
		if len(vector) == 0 {
			return fmt.Errorf("%w: empty vector for section %s", ErrInvalidProfile, section)
		}
		if dim == 0 {
			dim = len(vector)
		}
		if len(vector) != dim {
			return fmt.Errorf("%w: %w: section %s has %d dimensions, expected %d",
				ErrInvalidProfile, ErrDimensionMismatch, section, len(vector), dim)
		}
	}

	return nil
}
