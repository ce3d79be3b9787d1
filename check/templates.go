package check

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"dynstyle/config"
	"dynstyle/css"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	SourceFile string
	Format     string
	Rules      int
	Selectors  []string
	DynamicIDs []string
}

func buildSelectors(sheet *css.Stylesheet) []string {
	result := make([]string, 0, len(sheet.Rules))
	for _, r := range sheet.Rules {
		result = append(result, r.Path.String())
	}
	return result
}

func expandTemplate(sheet *css.Stylesheet, src string, name config.TemplateFieldName, field string, format config.DumpFormat) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Format:     format.String(),
		Rules:      len(sheet.Rules),
		Selectors:  buildSelectors(sheet),
		DynamicIDs: sheet.DynamicIDs(),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
