package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskdeck/internal/directory"
)

type usersOut struct {
	Users      []directory.User `json:"users"`
	Query      string           `json:"query,omitempty"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

func (o usersOut) String() string {
	var b strings.Builder
	for _, u := range o.Users {
		fmt.Fprintf(&b, "%-3d %s <%s>\n", u.ID, u.Name, u.Email)
		fmt.Fprintf(&b, "    %s  %s, %s\n", u.Phone, u.Address.Street, u.Address.City)
	}
	if len(o.Users) == 0 {
		b.WriteString("no users found\n")
	}
	fmt.Fprintf(&b, "page %d/%d", o.Page, o.TotalPages)
	return b.String()
}

func newUsersCmd(app *App) *cobra.Command {
	var search string
	var page int
	var pageSize int

	cmd := &cobra.Command{
		Use:   "users",
		Short: "Fetch and print a page of the remote user directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newDirectoryClient()
			users, err := client.FetchUsers(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}

			v := directory.NewView()
			v.PageSize = pageSize
			v.SetQuery(search)
			v.Page = page
			v.Clamp(users)

			total := v.TotalPages(users)
			outPage := v.Page
			if total == 0 {
				outPage = 0
			}
			return writeOut(cmd, app, usersOut{
				Users:      v.Visible(users),
				Query:      v.Query,
				Page:       outPage,
				TotalPages: total,
			})
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive match against name or email")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", directory.DefaultPageSize, "Users per page")
	return cmd
}
