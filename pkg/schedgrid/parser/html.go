package parser

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTableSelector locates the class table on the enrollment system's
// course offerings page.
const DefaultTableSelector = "body > table:nth-child(5) > tbody > tr > td > table > tbody > tr:nth-child(3) > td > table > tbody > tr > td:nth-child(2) > form > table"

// ExtractHTMLRows finds the schedule table in an HTML document and returns
// the trimmed text of every td, row by row.
//
// When the selector matches several tables, the first one holding at least
// one schema-width row wins; otherwise the first match is used.
func ExtractHTMLRows(r io.Reader, selector string) ([][]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	if selector == "" {
		selector = DefaultTableSelector
	}

	tables := doc.Find(selector)
	if tables.Length() == 0 {
		return nil, ErrTableNotFound
	}

	var chosen [][]string
	tables.EachWithBreak(func(i int, table *goquery.Selection) bool {
		rows := tableRows(table)
		if i == 0 {
			chosen = rows
		}
		if countRowsOfWidth(rows, SchemaWidth) > 0 {
			chosen = rows
			return false
		}
		return true
	})
	return chosen, nil
}

func tableRows(table *goquery.Selection) [][]string {
	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := []string{}
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		rows = append(rows, cells)
	})
	return rows
}
