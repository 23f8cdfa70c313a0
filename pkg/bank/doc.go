// Package bank loads question bank documents into the database.
//
// Bank documents are YAML files holding a list of questions. Each entry
// carries a question type, a CEFR level and the content fields that type
// needs. Documents are validated before loading; loading upserts by question
// id inside one transaction, so re-loading an edited document updates
// questions in place.
//
// Passages may be written in Markdown and are rendered to HTML when served.
package bank
