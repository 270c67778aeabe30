package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/aliaa11/userboard/internal/authz"
	"github.com/aliaa11/userboard/internal/models"
)

var errCreateForbidden = errors.New("Only admins can create users")

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid user id: %q", arg)
	}
	return id, nil
}

// List fetches and renders a page of users. With no argument the current
// page is refreshed (page 1 on first use).
func (a *App) List(ctx context.Context, args []string) error {
	page := a.dash.currentPageNumber()
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 1 {
			printlnFn("Usage: list [page]")
			return fmt.Errorf("invalid page: %q", args[0])
		}
		page = parsed
	}
	return a.showPage(ctx, page)
}

// NextPage moves the dashboard one page forward, clamped to the last page.
func (a *App) NextPage(ctx context.Context) error {
	page := a.dash.currentPageNumber() + 1
	if last := a.dash.lastPageNumber(); page > last {
		page = last
	}
	return a.showPage(ctx, page)
}

// PrevPage moves the dashboard one page back, clamped to page 1.
func (a *App) PrevPage(ctx context.Context) error {
	page := a.dash.currentPageNumber() - 1
	if page < 1 {
		page = 1
	}
	return a.showPage(ctx, page)
}

func (a *App) showPage(ctx context.Context, page int) error {
	result, err := a.dash.load(ctx, page)
	if err != nil {
		if err == errStaleFetch {
			return nil
		}
		printlnFn(err)
		return err
	}
	printlnFn(a.renderUserTable(result))
	return nil
}

// renderUserTable formats a user page as an aligned table with a per-row
// actions column showing what the viewer may do with each user.
func (a *App) renderUserTable(page *models.UserPage) string {
	viewer := a.session.CurrentUser()

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tACTIONS")
	for _, u := range page.Users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, rowActions(viewer, u.ID))
	}
	w.Flush()

	p := page.Pagination
	fmt.Fprintf(&b, "Showing page %d of %d (%d total users)", p.CurrentPage, p.LastPage, p.Total)
	return b.String()
}

// rowActions lists the operations the viewer is allowed to perform on the
// given user. Only when neither edit nor delete is permitted does the row
// say so explicitly.
func rowActions(viewer *models.User, id int64) string {
	var actions []string
	if authz.CanEditUser(viewer, id) == nil {
		actions = append(actions, "edit")
	}
	if authz.CanDeleteUser(viewer, id) == nil {
		actions = append(actions, "delete")
	}
	if len(actions) == 0 {
		return "No actions available"
	}
	return strings.Join(actions, ", ")
}

func formatUserDetail(u *models.User) string {
	return fmt.Sprintf("ID:    %d\nName:  %s\nEmail: %s\nRole:  %s", u.ID, u.Name, u.Email, u.Role)
}

// Show fetches a single user and prints their details.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		printlnFn(err)
		return err
	}
	user, err := a.api.GetUser(ctx, id)
	if err != nil {
		printlnFn(err)
		return err
	}
	printlnFn(formatUserDetail(user))
	return nil
}

// Create prompts for a new user's details and creates the account. Only
// admins may create users.
func (a *App) Create(ctx context.Context) error {
	viewer := a.session.CurrentUser()
	if viewer == nil || !viewer.Role.IsAdmin() {
		printlnFn(errCreateForbidden)
		return errCreateForbidden
	}

	form, err := a.promptUserForm(userForm{Role: string(models.RoleMember)}, true)
	if err != nil {
		return err
	}

	user, err := a.api.CreateUser(ctx, form.toUserData())
	if err != nil {
		printlnFn(err)
		return err
	}
	printlnFn("Created user", user.ID)
	return a.showPage(ctx, a.dash.currentPageNumber())
}

// Edit updates a user. Members may only edit themselves; admins may edit
// anyone. Fields left blank keep their current values, and an empty password
// keeps the existing one.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		printlnFn(err)
		return err
	}

	viewer := a.session.CurrentUser()
	if err := authz.CanEditUser(viewer, id); err != nil {
		printlnFn(err)
		return err
	}

	current, err := a.api.GetUser(ctx, id)
	if err != nil {
		printlnFn(err)
		return err
	}

	form, err := a.promptEditForm(current)
	if err != nil {
		return err
	}

	updated, err := a.api.UpdateUser(ctx, id, form.toUserData())
	if err != nil {
		printlnFn(err)
		return err
	}
	printlnFn("Updated user", updated.ID)

	if viewer != nil && viewer.ID == id {
		if err := a.session.Refresh(ctx); err != nil {
			a.log.Warn(ctx, "session refresh after self-update failed", "error", err)
		}
	}
	return a.showPage(ctx, a.dash.currentPageNumber())
}

// Delete removes a user after confirmation. Members may only delete their
// own account; doing so ends the session.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		printlnFn(err)
		return err
	}

	viewer := a.session.CurrentUser()
	if err := authz.CanDeleteUser(viewer, id); err != nil {
		printlnFn(err)
		return err
	}

	deletingSelf := viewer != nil && viewer.ID == id
	question := "Are you sure you want to delete this user?"
	if deletingSelf {
		question = "Are you sure you want to delete your account?"
	}
	ok, err := confirmFn(a, question)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.api.DeleteUser(ctx, id); err != nil {
		printlnFn(err)
		return err
	}
	printlnFn("Deleted user", id)

	if deletingSelf {
		return a.Logout(ctx)
	}
	return a.showPage(ctx, a.dash.currentPageNumber())
}

// promptUserForm fills in a userForm from interactive prompts and validates
// it. passwordRequired distinguishes create from edit.
func (a *App) promptUserForm(initial userForm, passwordRequired bool) (userForm, error) {
	form := initial

	name, err := getSimpleText(a, "Name")
	if err != nil {
		return form, err
	}
	form.Name = name

	email, err := getSimpleText(a, "Email")
	if err != nil {
		return form, err
	}
	form.Email = email

	password, err := getPassword(a)
	if err != nil {
		return form, err
	}
	form.Password = string(password)

	role, err := getSimpleText(a, "Role (admin/member)")
	if err != nil {
		return form, err
	}
	if role != "" {
		form.Role = role
	}

	if err := form.Validate(passwordRequired); err != nil {
		printlnFn(err)
		return form, err
	}
	return form, nil
}

// promptEditForm pre-fills the form with the user's current values so the
// operator can keep a field by entering a blank line.
func (a *App) promptEditForm(current *models.User) (userForm, error) {
	form := userForm{
		Name:  current.Name,
		Email: current.Email,
		Role:  string(current.Role),
	}

	name, err := getTextDefault(a, "Name", form.Name)
	if err != nil {
		return form, err
	}
	form.Name = name

	email, err := getTextDefault(a, "Email", form.Email)
	if err != nil {
		return form, err
	}
	form.Email = email

	printlnFn("Leave the password empty to keep the current one.")
	password, err := getPassword(a)
	if err != nil {
		return form, err
	}
	form.Password = string(password)

	role, err := getTextDefault(a, "Role (admin/member)", form.Role)
	if err != nil {
		return form, err
	}
	form.Role = role

	if err := form.Validate(false); err != nil {
		printlnFn(err)
		return form, err
	}
	return form, nil
}
