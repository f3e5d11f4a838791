// Copyright 2025 Gharkhoj Labs
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


package present

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gharkhoj/gharkhoj/core"
)

// FormatPrice renders a rupee amount in the unit a listing site would
// show: crores above one crore, lakhs above one lakh, and a plain
// comma-grouped figure below that.
func FormatPrice(amount float64) string {
	switch {
	case amount >= core.Crore:
		return fmt.Sprintf("₹%.2f Cr", amount/core.Crore)
	case amount >= core.Lakh:
		return fmt.Sprintf("₹%.2f Lakh", amount/core.Lakh)
	default:
		return "₹" + groupThousands(int64(math.Round(amount)))
	}
}

// formatPriceRange renders "min - max" with each bound in its own unit.
// A range that straddles one crore keeps the low bound in lakhs.
func formatPriceRange(min, max float64) string {
	if max >= core.Crore {
		if min >= core.Crore {
			return fmt.Sprintf("₹%.2f Cr - ₹%.2f Cr", min/core.Crore, max/core.Crore)
		}
		return fmt.Sprintf("₹%.1f Lakh - ₹%.2f Cr", min/core.Lakh, max/core.Crore)
	}
	return fmt.Sprintf("₹%.2f Lakh - ₹%.2f Lakh", min/core.Lakh, max/core.Lakh)
}

// groupThousands inserts commas every three digits from the right.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
