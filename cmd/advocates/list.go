package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"advocates/internal/browse"
	"advocates/internal/client"
	"advocates/internal/model"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		search string
		page   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of advocates and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(opts.cfg.APIURL, opts.cfg.Timeout)
			res, err := c.ListAdvocates(cmd.Context(), client.Query{
				Search: search,
				Page:   page,
				Limit:  opts.cfg.PageSize,
			})
			if err != nil {
				return err
			}
			renderPage(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive substring to match")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	return cmd
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func renderPage(w io.Writer, res *model.AdvocatePage) {
	if len(res.Data) == 0 {
		fmt.Fprintln(w, "No advocates found")
		fmt.Fprintln(w, browse.RangeLabel(res.Pagination, 0))
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("First Name", "Last Name", "City", "Degree", "Specialties", "Years", "Phone").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, a := range res.Data {
		t.Row(a.FirstName, a.LastName, a.City, a.Degree,
			strings.Join(a.Specialties, ", "),
			strconv.Itoa(a.YearsOfExperience), a.PhoneNumber)
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, browse.RangeLabel(res.Pagination, len(res.Data)))
	if res.Pagination.TotalPages > 1 {
		fmt.Fprintf(w, "Page %d of %d\n", res.Pagination.Page, res.Pagination.TotalPages)
	}
}
