// Copyright 2026 sheetlens.io. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package sheetlens profiles the contents of Google Sheets worksheets shared with a
service account.

sheetlens can be used from the command line to generate standalone HTML data quality
reports, or run as a local web application that lets a user browse the spreadsheets
visible to the service account and view reports inline.

sheetlens supports the following commands:

  - list, to list the spreadsheets accessible to the service account
  - worksheets, to list the worksheets of a spreadsheet
  - get, to download a worksheet to a TSV file
  - report, to generate an HTML data quality report for a worksheet
  - serve, to run the interactive web UI on localhost
*/
package sheetlens
