package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/yamlptr/anchor"
	"github.com/signadot/yamlptr/cst"
	"github.com/signadot/yamlptr/debug"
)

func cstDump(cfg *CSTConfig, cc *cli.Context, args []string) error {
	args, err := cfg.CST.Parse(cc, args)
	if err != nil {
		return err
	}
	file, err := fileArg(args)
	if err != nil {
		return err
	}
	res, err := cfg.parseInput(cc, file)
	if err != nil {
		return err
	}
	tree, id := res.Tree, res.Tree.Root
	if cfg.At != "" {
		p, err := parsePathArg(cfg.At)
		if err != nil {
			return err
		}
		var ok bool
		id, ok = res.FindNode(p, false)
		if !ok {
			return fmt.Errorf("%s not found in %s", p, file)
		}
	}
	if cfg.Deref != "" {
		if _, ok := tree.Anchors()[cfg.Deref]; !ok {
			return fmt.Errorf("%w: no anchor %q in %s", cli.ErrUsage, cfg.Deref, file)
		}
		tree, id = anchor.Dereference(tree, id, cfg.Deref)
	}
	if cfg.Spew {
		return spewTree(cc, tree, id)
	}
	if err := tree.Fprint(cc.Out, id); err != nil {
		return err
	}
	for _, e := range tree.Errors {
		if _, err := fmt.Fprintf(cc.Out, "error %d:%d: %s\n", e.Line+1, e.Column+1, e.Reason); err != nil {
			return err
		}
	}
	return nil
}

func spewTree(cc *cli.Context, t *cst.Tree, id cst.NodeID) error {
	var err error
	t.Walk(id, func(n cst.NodeID) bool {
		if err != nil {
			return false
		}
		_, err = fmt.Fprintf(cc.Out, "%d: %s", n, debug.Dump(t.Node(n)))
		return true
	})
	return err
}
