package seeds

import _ "embed"

// SQL is the sample data loaded by `roster seed`. It is portable across the
// supported dialects.
//
//go:embed seeds.sql
var SQL string
