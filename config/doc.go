// Package config loads the YAML configuration of the lvtree shell.
//
// A file looks like:
//
//	index:
//	  kind: btree     # avl | btree | bst | reference
//	  order: 5        # B-tree branching factor, >= 3
//	shell:
//	  prompt: "lvtree> "
//	  trace: true     # log rotations and splits
//	seed:
//	  - {key: 8, field: A}
//
// Load("") looks for lvtree.yaml, then configs/lvtree.yaml, and falls back
// to Default when neither exists. Keys missing from the file keep their
// defaults. Every loaded Config has passed Validate.
package config
