// Package qurandata prepares Quran text and Turkish translation data for the
// Iman Defterim apps. It fetches editions from public APIs, re-keys verses by
// chapter and verse number, merges the Turkish surah name table and emits
// application-consumable output (generated Swift source, JSON or SQLite).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, zstd/).
package qurandata
