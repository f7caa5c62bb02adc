package confcheck

import (
	"fmt"
	"time"

	"github.com/Qaminono/Conference-Validator/pkg/confcheck/models"
	"github.com/Qaminono/Conference-Validator/pkg/confcheck/rules"
	"go.uber.org/zap"
)

// Validator runs the rule pipeline over grids. It holds no per-run state
// and may be reused.
type Validator struct {
	opts  Options
	rules *rules.Set
	log   *zap.Logger
}

// NewValidator compiles the configured rules.
func NewValidator(opts Options) (*Validator, error) {
	set, err := rules.New(opts.config())
	if err != nil {
		return nil, err
	}
	return &Validator{
		opts:  opts,
		rules: set,
		log:   opts.logger(),
	}, nil
}

// Rules returns the compiled rule set.
func (v *Validator) Rules() *rules.Set {
	return v.rules
}

// Validate runs every rule over g in pipeline order and groups the findings.
func (v *Validator) Validate(g *models.Grid) *models.Report {
	start := time.Now()
	includeWarnings := v.opts.ShouldIncludeWarnings()

	var findings []models.Finding
	for _, rule := range v.rules.Rules() {
		found := rule.Check(g)
		kept := 0
		for _, f := range found {
			if f.Severity == models.SeverityWarning && !includeWarnings {
				continue
			}
			findings = append(findings, f)
			kept++
		}
		v.log.Debug("rule finished",
			zap.String("category", string(rule.Category)),
			zap.Int("findings", kept))
	}

	report := models.NewReport(findings)
	report.Rows = g.RowCount()
	report.Columns = g.ColumnCount()

	v.log.Info("validation finished",
		zap.Int("rows", report.Rows),
		zap.Int("errors", report.Count(models.SeverityError)),
		zap.Int("warnings", report.Count(models.SeverityWarning)),
		zap.Duration("elapsed", time.Since(start)))
	return report
}

// Validate checks g with the default options.
func Validate(g *models.Grid) *models.Report {
	v, err := NewValidator(DefaultOptions())
	if err != nil {
		panic(fmt.Sprintf("default rules: %v", err))
	}
	return v.Validate(g)
}
