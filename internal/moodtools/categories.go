package moodtools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/moodscape/moodscape/internal/journal"
)

// AddCategoryTool handles the add_category MCP tool.
type AddCategoryTool struct {
	store *journal.Store
}

// NewAddCategoryTool creates an AddCategoryTool.
func NewAddCategoryTool(store *journal.Store) *AddCategoryTool {
	return &AddCategoryTool{store: store}
}

// Definition returns the MCP tool definition for add_category.
func (t *AddCategoryTool) Definition() mcp.Tool {
	return mcp.NewTool("add_category",
		mcp.WithDescription("Create a mood category (a user-defined tag with a color)."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Category name, e.g. 'Work' or 'Health'."),
		),
		mcp.WithString("color",
			mcp.Description("Hex color, e.g. #FFB300 (default: #9E9E9E)."),
		),
		mcp.WithNumber("id",
			mcp.Description("Existing category id to replace (optional)."),
		),
	)
}

// Handle processes the add_category tool call.
func (t *AddCategoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}

	category := journal.Category{
		ID:    int64(intArg(req, "id", 0)),
		Name:  name,
		Color: req.GetString("color", "#9E9E9E"),
	}

	saved, err := t.store.SaveCategory(category)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save category: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Category %q saved (id %d).", saved.Name, saved.ID)), nil
}

// ─── ListCategoriesTool ──────────────────────────────────────────────────────

// ListCategoriesTool handles the list_categories MCP tool.
type ListCategoriesTool struct {
	store *journal.Store
}

// NewListCategoriesTool creates a ListCategoriesTool.
func NewListCategoriesTool(store *journal.Store) *ListCategoriesTool {
	return &ListCategoriesTool{store: store}
}

// Definition returns the MCP tool definition for list_categories.
func (t *ListCategoriesTool) Definition() mcp.Tool {
	return mcp.NewTool("list_categories",
		mcp.WithDescription("List mood categories, sorted by name."),
	)
}

// Handle processes the list_categories tool call.
func (t *ListCategoriesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categories, err := t.store.Categories()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list categories: %v", err)), nil
	}

	if len(categories) == 0 {
		return mcp.NewToolResultText("No categories yet. Use add_category to create one."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Categories (%d):\n\n", len(categories))
	for _, c := range categories {
		fmt.Fprintf(&b, "- #%d %s (%s)\n", c.ID, c.Name, c.Color)
	}

	return mcp.NewToolResultText(b.String()), nil
}

// ─── DeleteCategoryTool ──────────────────────────────────────────────────────

// DeleteCategoryTool handles the delete_category MCP tool.
type DeleteCategoryTool struct {
	store *journal.Store
}

// NewDeleteCategoryTool creates a DeleteCategoryTool.
func NewDeleteCategoryTool(store *journal.Store) *DeleteCategoryTool {
	return &DeleteCategoryTool{store: store}
}

// Definition returns the MCP tool definition for delete_category.
func (t *DeleteCategoryTool) Definition() mcp.Tool {
	return mcp.NewTool("delete_category",
		mcp.WithDescription(
			"Delete a category by id. Entries that used it keep their mood "+
				"and note; they just lose the tag. Deleting an unknown id is a no-op.",
		),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Category id from list_categories."),
		),
	)
}

// Handle processes the delete_category tool call.
func (t *DeleteCategoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := intArg(req, "id", 0)
	if id == 0 {
		return mcp.NewToolResultError("'id' is required"), nil
	}

	if err := t.store.DeleteCategory(int64(id)); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete category: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Category %d deleted.", id)), nil
}
