package cmd

import (
	goerrors "errors"
	"fmt"
	"io"

	"github.com/wexinc/breakdown/internal/errors"
	"github.com/wexinc/breakdown/internal/tui/styles"
)

// renderError writes diagnostics for err to w, one line per aggregated
// error. Validation errors are expanded into their individual violations;
// breakdown errors render details and suggestions below the message.
func renderError(w io.Writer, err error) {
	var verrs errors.ValidationErrors
	if goerrors.As(err, &verrs) {
		for _, line := range verrs.Lines() {
			fmt.Fprintln(w, styles.ErrorTextStyle.Render("error: "+line))
		}
		return
	}

	var be *errors.BreakdownError
	if goerrors.As(err, &be) {
		fmt.Fprintln(w, styles.ErrorTextStyle.Render("error: "+be.Error()))
		for k, v := range be.Details {
			fmt.Fprintln(w, styles.MutedTextStyle.Render("  "+k+": "+v))
		}
		if be.Suggestion != "" {
			fmt.Fprintln(w, styles.WarningTextStyle.Render(be.Suggestion))
		}
		return
	}

	fmt.Fprintln(w, styles.ErrorTextStyle.Render("error: "+err.Error()))
}
