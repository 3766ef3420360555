// Package model defines shared data structures.
package model

import "time"

// Dictionary sources.
const (
	SourceFile = "file"
	SourceDB   = "db"
)

// Config defines finder settings after merging flags and the config file.
type Config struct {
	Lang      string `validate:"required,max=16"`
	Locale    string `validate:"omitempty,max=35"`
	Length    int    `validate:"gte=1"`
	Cap       int    `validate:"gte=1"`
	Source    string `validate:"oneof=file db"`
	Seed      int64
	LookupURL string `validate:"omitempty,url"`
}

// LengthCount is the number of dictionary entries of one length.
type LengthCount struct {
	Length int
	Count  int
}

// DictionaryInfo describes a dictionary imported into the store.
type DictionaryInfo struct {
	Lang       string
	Source     string
	Words      int
	ImportedAt time.Time
}
