package main

import (
	"strings"

	"github.com/Antonboom/testifylint/analyzer"
	"github.com/kTowkA/musiclab/internal/linter"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/slog"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

// состав проверок:
// все анализаторы класса SA из staticcheck;
// несколько анализаторов классов S и ST;
// стандартные анализаторы пакета golang.org/x/tools/go/analysis/passes;
// bodyclose и testifylint;
// собственный анализатор запрещенных вызовов из internal/linter

func main() {
	mychecks := make([]*analysis.Analyzer, 0, 150)

	// SA
	for _, v := range staticcheck.Analyzers {
		if strings.HasPrefix(v.Analyzer.Name, "SA") {
			mychecks = append(mychecks, v.Analyzer)
		}
	}

	// S1
	s1 := []string{"S1001", "S1040"}
	for _, v := range simple.Analyzers {
		for _, needA := range s1 {
			if needA == v.Analyzer.Name {
				mychecks = append(mychecks, v.Analyzer)
				break
			}
		}
	}

	// ST
	st := []string{"ST1015", "ST1022"}
	for _, v := range stylecheck.Analyzers {
		for _, needA := range st {
			if needA == v.Analyzer.Name {
				mychecks = append(mychecks, v.Analyzer)
				break
			}
		}
	}

	// golang.org/x/tools/go/analysis/passes
	mychecks = append(mychecks, printf.Analyzer)
	mychecks = append(mychecks, slog.Analyzer)
	mychecks = append(mychecks, unreachable.Analyzer)
	mychecks = append(mychecks, loopclosure.Analyzer)

	// публичные анализаторы
	mychecks = append(mychecks, analyzer.New())
	mychecks = append(mychecks, bodyclose.Analyzer)

	// ну и наша проверка запрещенных вызовов
	mychecks = append(mychecks, linter.New())

	multichecker.Main(
		mychecks...,
	)
}
