// Package ods reads and writes OpenDocument Spreadsheet (.ods) files.
//
// Basic usage:
//
//	book, err := ods.Read("budget.ods")
//	if err != nil {
//	    // handle error
//	}
//	sheet := book.Sheets[0]
//	fmt.Println(sheet.Cell(0, 0).Value)
//
// Building a document from scratch:
//
//	book := model.NewWorkbook()
//	locale.InstallDefaults(book, language.AmericanEnglish)
//	sheet := model.NewSheet("Sales")
//	sheet.SetValue(0, 0, value.Text("Total"))
//	sheet.SetValue(0, 1, value.Currency("USD", 1234.5))
//	book.AddSheet(sheet)
//	err := ods.Write(book, "sales.ods")
//
// An ODS file is a ZIP container whose content.xml member carries the sheet
// data. Runs of empty rows and columns are collapsed into repeat counts on
// disk; Read expands them into the sparse grid of the model package, and
// Write re-derives minimal repeat counts from the grid. Members this package
// does not model (images, settings) survive an in-place overwrite: the
// original file is renamed to a .bak sibling and its unclaimed members are
// carried over.
//
// All failures surface as *Error values carrying a Kind that names the
// failing domain: document structure, I/O, the ZIP container, XML syntax, or
// one of the typed value decoders.
package ods
