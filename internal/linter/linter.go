// пакет linter содержит собственный анализатор запрещенных вызовов.
// правилом задается функция, которую нельзя вызывать, и место, где нельзя это делать
package linter

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
)

const reportText = "запрещенный вызов функции"

// Rule описывает один запрещенный вызов
type Rule struct {
	// InPackage пакет, в котором вызов запрещен. пустое значение - во всех пакетах
	InPackage string
	// InFunction функция, из которой вызов запрещен. пустое значение - из всех функций
	InFunction string
	// CalleePackage пакет запрещенной функции. пустое значение - функция без селектора пакета
	CalleePackage string
	// CalleeName имя запрещенной функции
	CalleeName string
}

// defaultRules правила по умолчанию:
// os.Exit напрямую из main запрещен (плавную остановку ломает),
// fmt.Println запрещен везде - в приложении есть логер
var defaultRules = []Rule{
	{
		InPackage:     "main",
		InFunction:    "main",
		CalleePackage: "os",
		CalleeName:    "Exit",
	},
	{
		CalleePackage: "fmt",
		CalleeName:    "Println",
	},
}

// New создает анализатор с правилами rules. без правил используются правила по умолчанию
func New(rules ...Rule) *analysis.Analyzer {
	if len(rules) == 0 {
		rules = defaultRules
	}
	return &analysis.Analyzer{
		Name: "forbiddencalls",
		Doc:  "reports calls of functions forbidden by the rule set",
		Run: func(pass *analysis.Pass) (interface{}, error) {
			return run(pass, rules)
		},
	}
}

func run(pass *analysis.Pass, rules []Rule) (interface{}, error) {
	for _, rule := range rules {
		// правило без имени функции некорректно - пропускаем
		if rule.CalleeName == "" {
			continue
		}
		for _, file := range pass.Files {
			checkFile(pass, file, rule)
		}
	}
	return nil, nil
}

func checkFile(pass *analysis.Pass, file *ast.File, rule Rule) {
	if rule.InPackage != "" && file.Name.Name != rule.InPackage {
		return
	}
	ast.Inspect(file, func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.FuncDecl:
			// если правило ограничено функцией, в другие даже не заходим
			if rule.InFunction != "" && x.Name.Name != rule.InFunction {
				return false
			}
		case *ast.CallExpr:
			switch y := x.Fun.(type) {
			case *ast.Ident:
				// вызов без селектора пакета
				if rule.CalleePackage == "" && y.Name == rule.CalleeName {
					pass.Reportf(x.Pos(), reportText)
				}
			case *ast.SelectorExpr:
				pkg := ""
				if pkgID, ok := y.X.(*ast.Ident); ok {
					pkg = pkgID.Name
				}
				if pkg == rule.CalleePackage && y.Sel.Name == rule.CalleeName {
					pass.Reportf(x.Pos(), reportText)
				}
			}
		}
		return true
	})
}
