package check

import (
	"strings"
	"testing"

	"dynstyle/config"
)

func TestExpandTemplate(t *testing.T) {
	sheet := testSheet(t)

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"simple text", "simple-text", "simple-text"},
		{"source file", "{{ .SourceFile }}", "main"},
		{"context", "{{ .Context }}", string(config.OutputNameTemplateFieldName)},
		{"format", "{{ .Format }}", "yaml"},
		{"rules", "{{ .Rules }}", "3"},
		{"selectors", `{{ index .Selectors 0 }}`, "div.card#main > p:first"},
		{"dynamic ids", `{{ join "+" .DynamicIDs }}`, "card_bg+img_w"},
		{"sprig functions", `{{ .SourceFile | upper | repeat 2 }}`, "MAINMAIN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandTemplate(sheet, "dir/main.css", config.OutputNameTemplateFieldName, tt.template, config.DumpFormatYaml)
			if err != nil {
				t.Fatalf("expandTemplate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("expandTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandTemplate_Errors(t *testing.T) {
	sheet := testSheet(t)

	_, err := expandTemplate(sheet, "main.css", config.OutputNameTemplateFieldName, "{{ .SourceFile", config.DumpFormatTree)
	if err == nil || !strings.Contains(err.Error(), "unable to parse template field") {
		t.Errorf("expandTemplate() error = %v, want parse error", err)
	}

	if _, err := expandTemplate(sheet, "main.css", config.OutputNameTemplateFieldName, "{{ .NoSuchField }}", config.DumpFormatTree); err == nil {
		t.Error("expandTemplate() expected execution error for unknown field")
	}
}
