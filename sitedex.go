// Package sitedex provides a domain-scoped web crawler with semantic search.
// It discovers the pages of a single web domain, extracts their content as
// markdown, indexes the content with vector embeddings, and answers natural
// language queries against the index.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, goquery/).
package sitedex
