// Package office is the document resource gateway core.
//
// It maps three office package formats onto a uniform content model and
// enforces the lifecycle rules every tool shares:
//   - word: ordered paragraphs (.docx)
//   - spreadsheet: named sheets of rows of text cells (.xlsx)
//   - presentation: ordered slides with title and body placeholders (.pptx)
//
// Components:
//   - Resolver: logical name -> extension-normalized path confined to the
//     base directory; rejects traversal and absolute-path input
//   - adapters (word.go, sheet.go, slides.go): create/read/append/delete
//     against the format's content model; create refuses existing targets,
//     everything else refuses missing ones; updates are append-only
//   - Diagnose: three-tier classification of read failures by inspecting
//     the file as a generic zip archive
//
// Every operation is one synchronous unit of work: the package is opened or
// constructed, mutated in memory, persisted and discarded. Nothing is cached
// between calls and no per-path locking is performed, so concurrent updates
// to the same file can lose one writer's result.
package office
