package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootPage = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// child with children
const childParentPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
has_children: true
---
`

// grandchildren
const grandchildPage = `---
layout: default
title: %s
parent: %s
grand_parent: %s
nav_order: %d
---
`

// docType codes whether the command is a grandchild, child, etc
type docType int

const (
	root docType = iota
	child
	childParent
	grandchild
)

// meta is for describing the position/info for a command doc page
type meta struct {
	docType     docType
	title       string
	navOrder    int
	parent      string
	grandParent string
}

// map from the base Markdown file name to its page meta
var metaMap = map[string]meta{
	"fishbio":                  {root, "fishbio", 0, "", ""},
	"fishbio_mitogenome":       {child, "mitogenome", 0, "fishbio", ""},
	"fishbio_catalogue":        {child, "catalogue", 1, "fishbio", ""},
	"fishbio_bundle":           {child, "bundle", 2, "fishbio", ""},
	"fishbio_morpho":           {childParent, "morpho", 3, "fishbio", ""},
	"fishbio_morpho_transpose": {grandchild, "transpose", 0, "morpho", "fishbio"},
	"fishbio_morpho_rename":    {grandchild, "rename", 1, "morpho", "fishbio"},
	"fishbio_morpho_clean":     {grandchild, "clean", 2, "morpho", "fishbio"},
	"fishbio_morpho_divide":    {grandchild, "divide", 3, "morpho", "fishbio"},
	"fishbio_morpho_scale":     {grandchild, "scale", 4, "morpho", "fishbio"},
	"fishbio_morpho_log":       {grandchild, "log", 5, "morpho", "fishbio"},
}

// docsCmd writes the Markdown pages of the command docs site
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Write Markdown documentation for every command",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create docs dir: %w", err)
		}
		if err := doc.GenMarkdownTreeCustom(RootCmd, dir, filePrepender, linkHandler); err != nil {
			return fmt.Errorf("failed to write docs: %w", err)
		}
		return nil
	},
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	m, ok := metaMap[pageName(filename)]
	if !ok {
		return ""
	}

	switch m.docType {
	case root:
		return fmt.Sprintf(rootPage, m.title, m.navOrder)
	case child:
		return fmt.Sprintf(childPage, m.title, m.parent, m.navOrder)
	case childParent:
		return fmt.Sprintf(childParentPage, m.title, m.parent, m.navOrder)
	case grandchild:
		return fmt.Sprintf(grandchildPage, m.title, m.parent, m.grandParent, m.navOrder)
	}
	return ""
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	base := pageName(filename)
	if base == "fishbio" {
		return "/"
	}
	return base
}

func pageName(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, path.Ext(name))
}

func init() {
	docsCmd.Flags().StringP("dir", "d", "docs", "output directory")
	RootCmd.AddCommand(docsCmd)
}
