/*
Package plan finds the files that should be renamed and works out their new names.

	+-------------+       +-------------+
	|    Walk     | ----> |    Plan     |
	| (recursive) |       |   (Pairs)   |
	+-------------+       +-------------+

🎯 Purpose:
- Walk a directory tree at every depth
- Select regular files whose stem is purely alphanumeric
- Name each selected file after its immediate parent directory

🔄 Flow:
1. Stat the root, failing on a missing or non-directory root
2. Glob every entry below the root, at any depth, and test each one
3. Rebuild the final path element as parent name + original extension
4. Return the complete plan before anything is touched

📝 Notes:
Only the last path element is ever rebuilt. A plain string replace of the
stem across the whole path would also rewrite any directory that happens to
contain the same text, so "Show2/Show.mkv" must become "Show2/Show2.mkv"
and never "Show22/Show2.mkv".

Files that already carry their parent's name still produce a pair; renaming
them is a no-op.

🔍 Example:

	p, err := plan.Build(ctx, afero.NewOsFs(), "/media/tv/Show")
*/
package plan
