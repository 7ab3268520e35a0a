package log

import (
	"context"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserFeedback provides user-friendly messages on stderr, keeping the
// report stream clean for the per-file lines
type UserFeedback struct {
	log     zerolog.Logger // for debug/error logging
	success pterm.PrefixPrinter
	failure pterm.PrefixPrinter
	warning pterm.PrefixPrinter
}

// 🎯 NewUserFeedback creates a new user feedback printer
func NewUserFeedback(ctx context.Context) *UserFeedback {
	return &UserFeedback{
		log:     *zerolog.Ctx(ctx),
		success: *pterm.Success.WithWriter(os.Stderr).WithPrefix(pterm.Prefix{Text: "✅"}),
		failure: *pterm.Error.WithWriter(os.Stderr).WithPrefix(pterm.Prefix{Text: "❌"}),
		warning: *pterm.Warning.WithWriter(os.Stderr).WithPrefix(pterm.Prefix{Text: "⚠️"}),
	}
}

// 🔍 LogValidation logs validation results
func (u *UserFeedback) LogValidation(valid bool, description string, err error) {
	if valid {
		u.success.Println(description)
		u.log.Info().Msg(description)
		return
	}
	if err != nil {
		u.failure.Println(description)
		pterm.Error.WithWriter(os.Stderr).Println(err)
		u.log.Error().Err(err).Msg(description)
	} else {
		u.warning.Println(description)
		u.log.Warn().Msg(description)
	}
}
