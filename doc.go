// Package planner provides the data model and operations for a local-first
// wedding planning tracker: a checklist organized in sections, a guest list
// with payment tracking, and a provider budget ledger.
//
// The core functionalities include:
//   - Document Store: owning the single persisted Document, bootstrapping a
//     default one on first use, and persisting it after every mutation.
//   - Repositories: add/update/remove operations over sections, tasks,
//     guests and budget items, each normalizing records on write.
//   - Aggregation: stateless report computations (checklist progress, guest
//     statistics, combined budget totals) derived from the Document on
//     every call, never cached and never persisted.
//   - Import/Export: a single canonical JSON backup format, with one-way
//     migration of documents written by older versions of the app.
//
// This package serves as the foundational logic for the `wpc` command-line
// tool. All state lives in one Document value; nothing in this package
// holds global mutable state.
package planner
