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


package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gharkhoj/gharkhoj"
	"github.com/gharkhoj/gharkhoj/core"
)

var exampleQueries = []string{
	"3BHK flat in Pune under ₹1.2 Cr",
	"2BHK apartment in Mumbai ready to move under 80 lakh",
	"Show me properties in Chembur",
}

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

func main() {
	catalog, err := gharkhoj.Open(nil)
	if err != nil {
		panic(err)
	}

	queries := exampleQueries
	if len(os.Args) > 1 {
		queries = []string{strings.Join(os.Args[1:], " ")}
	}

	for _, query := range queries {
		rows, _ := catalog.Search(query, 5)

		fmt.Printf("'%s': %d hits\n", query, len(rows))
		for i, row := range rows {
			name, _ := row.Get(core.ColProjectName)
			price, _ := row.Float(core.ColPrice)
			fmt.Printf("%d: '%s' (%d)[%0.0f]\n", i, name, core.RowID(row), price)
		}
		fmt.Println()
	}
}
