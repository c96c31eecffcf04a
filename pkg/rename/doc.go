/*
Package rename applies rename plans and reports each step.

🔄 Flow:
1. Build a plan for the root (see package plan)
2. Rename each pair in order through an afero.Fs
3. Report every rename, or that nothing was eligible
4. Report completion

Renames are fail-fast: the first error is returned and nothing after it runs.
There is no rollback; renames that already happened stay applied.
*/
package rename
