// Package cluster grows, scores, and filters biclusters from a sorted
// seed list — the expansion engine, post-processor, and output
// assembler of the unibic pipeline.
//
// 🚀 How a seed becomes a bicluster:
//
//	1. Admission  — a seed whose rows already belong to emitted
//	   blocks is skipped (fast used-rows check above 250 rows, a
//	   per-block overlap check below).
//	2. Init       — greedy expansion by maximum LCS length against
//	   the seed's reference row, ties broken by ascending row index;
//	   the score trace balances row count against shared length.
//	3. Truncation — the trace is cut at the prefix achieving the best
//	   score, discarding rows admitted past the optimum.
//	4. Columns    — per-column tag statistics over the kept rows seed
//	   the candidate column set (ordered, ascending).
//	5. Forward    — rows whose tag sets agree with the candidate
//	   columns at the required tolerance join the block.
//	6. Reverse    — remaining rows are re-tagged against the seed
//	   pair's tag mask with reversed orientation, recruiting
//	   negatively-correlated rows under the same criteria.
//	7. Finalize   — blocks below the 5×4 minimum are dropped; the
//	   rest are scored (rows·cols, or −100·ln p with the p-value
//	   hook) and queued for post-processing.
//
// Post-processing sorts candidates by score descending (stable) and
// filters overlap against already-emitted blocks; the assembler turns
// the survivors into the two boolean masks RowxNumber and NumberxCol.
//
// Determinism: every mutating loop walks rows in ascending index
// order; the data-parallel regions (per-row tag and statistics
// computation) are read-only and write disjoint, preallocated slots.
// Two runs over identical inputs produce identical results.
//
// Errors:
//
//   - core.ErrEmptyInput, core.ErrDimensionMismatch from input
//     validation; context cancellation between seeds.
package cluster
