package main

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/viant/synthview"
	"github.com/viant/synthview/memory"
	"strings"
)

var (
	colorText  = lipgloss.Color("#e6edf3")
	colorDim   = lipgloss.Color("#8b949e")
	colorBlue  = lipgloss.Color("#58a6ff")
	colorGreen = lipgloss.Color("#3fb950")
	colorRed   = lipgloss.Color("#f85149")

	nameStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	typeStyle      = lipgloss.NewStyle().Foreground(colorDim)
	summaryStyle   = lipgloss.NewStyle().Foreground(colorText)
	syntheticStyle = lipgloss.NewStyle().Foreground(colorGreen)
	errorStyle     = lipgloss.NewStyle().Foreground(colorRed)
	branchStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

func renderTree(node *synthview.Node) string {
	builder := &strings.Builder{}
	renderNode(builder, node, "", "")
	return builder.String()
}

func renderNode(builder *strings.Builder, node *synthview.Node, prefix, childPrefix string) {
	builder.WriteString(branchStyle.Render(prefix))
	builder.WriteString(renderLabel(node))
	builder.WriteString("\n")
	for i, child := range node.Children {
		if i == len(node.Children)-1 && !node.Truncated() {
			renderNode(builder, child, childPrefix+"└─ ", childPrefix+"   ")
			continue
		}
		renderNode(builder, child, childPrefix+"├─ ", childPrefix+"│  ")
	}
	if node.Truncated() {
		builder.WriteString(branchStyle.Render(childPrefix + "└─ "))
		builder.WriteString(typeStyle.Render(fmt.Sprintf("... %v more", node.Count-len(node.Children))))
		builder.WriteString("\n")
	}
}

func renderLabel(node *synthview.Node) string {
	parts := []string{nameStyle.Render(node.Name)}
	if node.Type != "" {
		parts = append(parts, typeStyle.Render("("+node.Type+")"))
	}
	if node.Summary != "" {
		parts = append(parts, "= "+summaryStyle.Render(node.Summary))
	}
	if node.Synthetic {
		parts = append(parts, syntheticStyle.Render(fmt.Sprintf("size=%v", node.Count)))
	}
	if node.Error != "" {
		parts = append(parts, errorStyle.Render("error: "+node.Error))
	}
	return strings.Join(parts, " ")
}

func renderBinding(binding *synthview.BindingConfig) string {
	return syntheticStyle.Render(fmt.Sprintf("%-12v", binding.Kind)) + " " + binding.Pattern
}

func renderLayout(variable *memory.Value) string {
	builder := &strings.Builder{}
	builder.WriteString(nameStyle.Render(variable.Name()))
	aType, _ := variable.Type().(*memory.Type)
	if aType == nil {
		builder.WriteString("\n")
		return builder.String()
	}
	builder.WriteString(" " + typeStyle.Render("("+aType.Name()+")"))
	if aType.Kind() == memory.ReferenceKind {
		aType = aType.Elem()
	}
	builder.WriteString(" " + syntheticStyle.Render(fmt.Sprintf("size=%v", aType.ByteSize())) + "\n")
	members := aType.Members()
	for i, member := range members {
		branch := "├─ "
		if i == len(members)-1 {
			branch = "└─ "
		}
		builder.WriteString(branchStyle.Render(branch))
		builder.WriteString(typeStyle.Render(fmt.Sprintf("+%-4v", member.Offset)))
		builder.WriteString(" " + nameStyle.Render(member.Name))
		builder.WriteString(" " + typeStyle.Render("("+member.Type.Name()+")") + "\n")
	}
	return builder.String()
}
