// Package export renders event standings as an Excel workbook.
package export
