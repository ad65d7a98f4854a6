package paginator

// Package paginator compiles pagination requests into backend-agnostic,
// injection-safe predicates and response metadata.
//
// Overview
//
// A request is described through a Builder: page/offset or a keyset cursor,
// an optional sort key, a conjunction of field filters and a free-text search.
// Build validates everything at once and returns an immutable Params
// descriptor. The descriptor compiles into a Predicate - an AND-combined
// condition list with ordered bind values and no inlined literals - which is
// handed to an execution collaborator together with a limit-plus-one fetch
// directive. BuildResponse then turns the fetched rows into the final page
// with has_next/has_prev flags, optional totals and opaque next/prev cursor
// tokens.
//
// Key concepts
//   - Builder / Params: incremental declarations, one-shot validation, an
//     immutable descriptor safe for concurrent use.
//   - Predicate: ToSQL for parameterized raw SQL, Apply for GORM.
//   - Cursor: a stateless encode/decode pair over (field, value, direction);
//     no cursor store exists anywhere.
//   - FilterScope / CountQuery: CTE-aware wrapping so outer clauses never
//     escape into a leading WITH block.
//
// Paginate runs the whole flow against a *gorm.DB; the ginpager subpackage
// parses the documented query-string grammar and emits JSON responses.
