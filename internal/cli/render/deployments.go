package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/trebuchet-org/stark-deploy/internal/domain/models"
	"github.com/trebuchet-org/stark-deploy/internal/usecase"
	"gopkg.in/yaml.v3"
)

// Color styles for table format
var (
	networkBg          = color.BgCyan
	networkHeader      = color.New(networkBg, color.FgBlack)
	networkHeaderBold  = color.New(networkBg, color.FgBlack, color.Bold)
	contractStyle      = color.New(color.FgGreen, color.Bold)
	addressStyle       = color.New(color.FgWhite)
	classHashStyle     = color.New(color.FgCyan)
	timestampStyle     = color.New(color.Faint)
	missingStyle       = color.New(color.FgYellow)
	sectionHeaderStyle = color.New(color.Bold, color.FgHiWhite)
)

type TableData [][]string

// DeploymentsRenderer renders deployment lists as formatted tables with tree-style layout
type DeploymentsRenderer struct {
	out io.Writer
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer) *DeploymentsRenderer {
	return &DeploymentsRenderer{out: out}
}

// RenderDeploymentList renders deployments grouped by network
func (r *DeploymentsRenderer) RenderDeploymentList(result *usecase.DeploymentListResult) error {
	if len(result.Deployments) == 0 {
		fmt.Fprintln(r.out, "No deployments found")
		return nil
	}

	r.displayTableFormat(result)
	return nil
}

// RenderYAML writes the deployment records as a YAML document
func (r *DeploymentsRenderer) RenderYAML(result *usecase.DeploymentListResult) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	defer enc.Close()

	doc := struct {
		Deployments []*models.Deployment `yaml:"deployments"`
		Total       int                  `yaml:"total"`
	}{
		Deployments: result.Deployments,
		Total:       result.Summary.Total,
	}
	if doc.Deployments == nil {
		doc.Deployments = []*models.Deployment{}
	}
	return enc.Encode(doc)
}

// displayTableFormat shows deployments in table format
func (r *DeploymentsRenderer) displayTableFormat(result *usecase.DeploymentListResult) {
	byNetwork := lo.GroupBy(result.Deployments, func(d *models.Deployment) string {
		return d.Network
	})

	networks := lo.Keys(byNetwork)
	sort.Strings(networks)

	// Build all tables for consistent column width calculation
	tables := make(map[string]TableData, len(networks))
	for _, network := range networks {
		tables[network] = r.buildDeploymentTable(byNetwork[network])
	}
	globalColumnWidths := calculateTableColumnWidths(lo.Values(tables))

	for netIdx, network := range networks {
		isLastNetwork := netIdx == len(networks)-1
		treePrefix := "├─"
		continuationPrefix := "│ "
		if isLastNetwork {
			treePrefix = "└─"
			continuationPrefix = "  "
		}

		networkLabel := fmt.Sprintf("%-10s", "network:")
		networkValue := fmt.Sprintf("%-30s", strings.ToUpper(network))
		fmt.Fprintf(r.out, "%s%s%s\n",
			treePrefix,
			networkHeader.Sprintf(" ◎ %s ", networkLabel),
			networkHeaderBold.Sprint(networkValue))
		fmt.Fprintln(r.out, continuationPrefix)

		fmt.Fprintf(r.out, "%s%s\n", continuationPrefix, sectionHeaderStyle.Sprint("CONTRACTS"))
		fmt.Fprint(r.out, renderTableWithWidths(tables[network], globalColumnWidths, continuationPrefix))
		fmt.Fprintln(r.out)

		if !isLastNetwork {
			fmt.Fprintln(r.out, continuationPrefix)
		} else {
			fmt.Fprintln(r.out)
		}
	}

	fmt.Fprintf(r.out, "Total deployments: %d\n", result.Summary.Total)
}

// buildDeploymentTable creates a TableData for a list of deployments
func (r *DeploymentsRenderer) buildDeploymentTable(deployments []*models.Deployment) TableData {
	tableData := make(TableData, 0, len(deployments))

	// Sort deployments by contract name, newest first within a name
	sort.SliceStable(deployments, func(i, j int) bool {
		nameI := deployments[i].DisplayName()
		nameJ := deployments[j].DisplayName()
		if nameI == nameJ {
			return deployments[i].CreatedAt.After(deployments[j].CreatedAt)
		}
		return nameI < nameJ
	})

	for _, deployment := range deployments {
		addressCell := missingStyle.Sprint("(address unknown)")
		if deployment.Address != "" {
			addressCell = addressStyle.Sprint(deployment.Address)
		}

		tableData = append(tableData, []string{
			contractStyle.Sprint(deployment.DisplayName()),
			addressCell,
			classHashStyle.Sprint(shortFelt(deployment.ClassHash)),
			timestampStyle.Sprint(deployment.CreatedAt.Format("2006-01-02 15:04:05")),
			timestampStyle.Sprint(deployment.ShortID()),
		})
	}

	return tableData
}

// renderTableWithWidths renders a table with specific column widths
func renderTableWithWidths(tableData TableData, columnWidths []int, continuationPrefix string) string {
	if len(tableData) == 0 {
		return ""
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}

	// Configure column styles with calculated widths
	colConfigs := make([]table.ColumnConfig, len(columnWidths))
	for i, width := range columnWidths {
		if i == 0 {
			width += 2 + len([]rune(continuationPrefix))
		}
		colConfigs[i] = table.ColumnConfig{
			Number:   i + 1,
			Align:    text.AlignLeft,
			WidthMin: width,
			WidthMax: width,
		}
	}
	t.SetColumnConfigs(colConfigs)

	for _, row := range tableData {
		tableRow := make(table.Row, len(row))
		for i, cell := range row {
			if i == 0 {
				tableRow[i] = continuationPrefix + cell
			} else {
				tableRow[i] = cell
			}
		}
		t.AppendRow(tableRow)
	}

	return t.Render()
}

// calculateTableColumnWidths calculates column widths for multiple tables
func calculateTableColumnWidths(tables []TableData) []int {
	if len(tables) == 0 {
		return nil
	}

	maxCols := 0
	for _, table := range tables {
		for _, row := range table {
			if len(row) > maxCols {
				maxCols = len(row)
			}
		}
	}

	widths := make([]int, maxCols)
	for _, table := range tables {
		for _, row := range table {
			for colIdx, cell := range row {
				// Strip ANSI codes for width calculation
				cellWidth := len([]rune(stripAnsiCodes(cell)))
				if cellWidth > widths[colIdx] {
					widths[colIdx] = cellWidth
				}
			}
		}
	}

	return widths
}
