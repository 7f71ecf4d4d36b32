package checkers

import (
	"context"
	"errors"

	"github.com/artem13815/resume-analyzer/pkg/taxonomy"
)

// TaxonomyChecker fails when the loaded taxonomy has no role with skills.
type TaxonomyChecker struct {
	tax *taxonomy.Taxonomy
}

func NewTaxonomyChecker(tax *taxonomy.Taxonomy) *TaxonomyChecker {
	return &TaxonomyChecker{tax: tax}
}

func (c *TaxonomyChecker) Name() string { return "taxonomy" }

func (c *TaxonomyChecker) Check(context.Context) error {
	for _, r := range c.tax.Roles() {
		if len(r.Skills) > 0 {
			return nil
		}
	}
	return errors.New("no role with required skills")
}
