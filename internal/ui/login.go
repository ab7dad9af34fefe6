package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shiftdesk/shiftdesk/internal/api"
	"github.com/shiftdesk/shiftdesk/internal/store"
)

// LoginView renders the credential form shown to signed-out users
type LoginView struct {
	store *store.Store

	emailEntry    *widget.Entry
	passwordEntry *widget.Entry
	submitBtn     *widget.Button
	errorLabel    *widget.Label
	content       fyne.CanvasObject
}

// NewLoginView creates the login form
func NewLoginView(st *store.Store) *LoginView {
	v := &LoginView{store: st}
	v.createUI()
	return v
}

// Content returns the view's root object
func (v *LoginView) Content() fyne.CanvasObject {
	return v.content
}

func (v *LoginView) createUI() {
	v.emailEntry = widget.NewEntry()
	v.emailEntry.SetPlaceHolder("you@company.com")

	v.passwordEntry = widget.NewPasswordEntry()
	v.passwordEntry.SetPlaceHolder("Password")
	v.passwordEntry.OnSubmitted = func(string) { v.onSubmit() }

	v.errorLabel = widget.NewLabel("")
	v.errorLabel.Wrapping = fyne.TextWrapWord
	v.errorLabel.Hide()

	v.submitBtn = widget.NewButton("Sign in", v.onSubmit)
	v.submitBtn.Importance = widget.HighImportance

	form := container.NewVBox(
		widget.NewLabelWithStyle("ShiftDesk", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Sign in to view your schedule"),
		widget.NewSeparator(),
		widget.NewLabel("Email"),
		v.emailEntry,
		widget.NewLabel("Password"),
		v.passwordEntry,
		v.errorLabel,
		v.submitBtn,
	)

	v.content = container.NewCenter(container.NewGridWrap(fyne.NewSize(DialogWidth, DialogHeight), form))
}

func (v *LoginView) onSubmit() {
	req := api.LoginRequest{Email: v.emailEntry.Text, Password: v.passwordEntry.Text}
	if msg := ValidateLogin(req); msg != "" {
		v.errorLabel.SetText(msg)
		v.errorLabel.Show()
		return
	}

	v.errorLabel.Hide()
	v.submitBtn.Disable()
	go v.store.Auth.Login(context.Background(), req.Email, req.Password)
}

// Refresh re-renders the form from the auth slice
func (v *LoginView) Refresh() {
	if v.store.Auth.IsLoading() {
		v.submitBtn.Disable()
	} else {
		v.submitBtn.Enable()
	}

	if msg := v.store.Auth.Error(); msg != "" {
		v.errorLabel.SetText(msg)
		v.errorLabel.Show()
	} else {
		v.errorLabel.Hide()
	}
}
