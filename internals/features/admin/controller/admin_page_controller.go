package controller

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"altroway_backend/internals/features/admin/views"
	cmsModel "altroway_backend/internals/features/cms/content/model"
	cmsService "altroway_backend/internals/features/cms/content/service"
	dashboardService "altroway_backend/internals/features/home/dashboard/service"
	jobDTO "altroway_backend/internals/features/jobs/jobs/dto"
	helper "altroway_backend/internals/helpers"
	"altroway_backend/internals/helpers/logger"
)

type AdminPageController struct {
	Services *dashboardService.DashboardService
}

func NewAdminPageController(db *gorm.DB) *AdminPageController {
	return &AdminPageController{Services: dashboardService.NewDashboardService(db)}
}

func (ctrl *AdminPageController) content() *cmsService.ContentService {
	return ctrl.Services.Content
}

func render(c *fiber.Ctx, name string, data fiber.Map) error {
	if data["Error"] == nil {
		data["Error"] = c.Query("error")
	}
	if data["Notice"] == nil {
		data["Notice"] = c.Query("notice")
	}
	return c.Render(name, data, views.AdminLayout)
}

// renderFailure shows a page-level error without leaking store details.
func renderFailure(c *fiber.Ctx, title string, err error) error {
	logger.L().Error("admin page failed", "path", c.Path(), "err", err)
	c.Status(fiber.StatusInternalServerError)
	return render(c, "admin/error", fiber.Map{"Title": title, "Error": helper.InternalServerErrorMessage})
}

// GET /
func (ctrl *AdminPageController) Home(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{"Title": "Home"}, views.PublicLayout)
}

// GET /login
func (ctrl *AdminPageController) Login(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{"Title": "Sign in"}, views.PublicLayout)
}

// GET /admin
func (ctrl *AdminPageController) Dashboard(c *fiber.Ctx) error {
	ctx := c.UserContext()
	stats, err := ctrl.Services.AdminStats(ctx)
	if err != nil {
		return renderFailure(c, "Dashboard", err)
	}
	users, _, err := ctrl.Services.Profiles.GetAllUsers(ctx, helper.NewPaging(1, 5, 5, 5))
	if err != nil {
		return renderFailure(c, "Dashboard", err)
	}
	items, err := ctrl.content().List(ctx, "", "")
	if err != nil {
		return renderFailure(c, "Dashboard", err)
	}
	if len(items) > 5 {
		items = items[:5]
	}
	return render(c, "admin/dashboard", fiber.Map{
		"Title":         "Dashboard",
		"Stats":         stats,
		"RecentUsers":   users,
		"RecentContent": items,
	})
}

// GET /admin/users
func (ctrl *AdminPageController) Users(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	users, total, err := ctrl.Services.Profiles.GetAllUsers(c.UserContext(), p)
	if err != nil {
		return renderFailure(c, "Users", err)
	}
	return render(c, "admin/users", fiber.Map{
		"Title":      "Users",
		"Users":      users,
		"Pagination": helper.BuildPagination(total, p),
		"PrevPage":   p.Page - 1,
		"NextPage":   p.Page + 1,
	})
}

// GET /admin/jobs
func (ctrl *AdminPageController) Jobs(c *fiber.Ctx) error {
	var f jobDTO.JobFilter
	if err := c.QueryParser(&f); err != nil {
		return render(c, "admin/jobs", fiber.Map{"Title": "Jobs", "Filter": f, "Error": "Invalid filter"})
	}
	jobs, err := ctrl.Services.Jobs.GetAllJobs(c.UserContext(), f)
	if err != nil {
		return renderFailure(c, "Jobs", err)
	}
	return render(c, "admin/jobs", fiber.Map{"Title": "Jobs", "Filter": f, "Jobs": jobs})
}

// GET /admin/cms?tab=&edit=<id>|new=1
func (ctrl *AdminPageController) CMS(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tab := normalizeTab(c.Query("tab"))
	data := fiber.Map{
		"Title":   "Content",
		"Tab":     tab,
		"Tabs":    tabViews(tab),
		"NewType": cmsModel.TabType(tab),
	}

	switch {
	case c.Query("edit") != "":
		editor, err := ctrl.loadEditor(ctx, c.Query("edit"))
		if err != nil {
			data["Error"] = err.Error()
		} else {
			data["Editor"] = editor
		}
	case c.QueryBool("new"):
		data["Editor"] = newEditor(cmsModel.TabType(tab))
	}

	items, err := ctrl.content().List(ctx, cmsModel.TabType(tab), "")
	if err != nil {
		return renderFailure(c, "Content", err)
	}
	data["Items"] = items
	return render(c, "admin/cms", data)
}

func (ctrl *AdminPageController) loadEditor(ctx context.Context, raw string) (*EditorView, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, helper.Invalid("Invalid content id")
	}
	row, err := ctrl.content().Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Invalid("Content not found")
		}
		return nil, err
	}
	return rowEditor(row), nil
}

// POST /admin/cms/save
func (ctrl *AdminPageController) SaveContent(c *fiber.Ctx) error {
	tab := normalizeTab(c.FormValue("tab"))
	form, err := ParseCMSForm(func(k string) string { return c.FormValue(k) })
	if err != nil {
		return c.Redirect(cmsRedirect(tab, "error", err.Error()), fiber.StatusSeeOther)
	}

	ctx := c.UserContext()
	if form.ID == "" {
		_, err = ctrl.content().Create(ctx, form.Input())
	} else {
		id, perr := uuid.Parse(form.ID)
		if perr != nil {
			return c.Redirect(cmsRedirect(form.Tab, "error", "Invalid content id"), fiber.StatusSeeOther)
		}
		_, err = ctrl.content().Update(ctx, id, form.Patch())
	}
	if err != nil {
		_, msg := helper.Classify(err)
		return c.Redirect(cmsRedirect(form.Tab, "error", msg), fiber.StatusSeeOther)
	}
	return c.Redirect(cmsRedirect(form.Tab, "notice", "Content saved"), fiber.StatusSeeOther)
}

// POST /admin/cms/delete; requires confirm=yes.
func (ctrl *AdminPageController) DeleteContent(c *fiber.Ctx) error {
	tab := normalizeTab(c.FormValue("tab"))
	if c.FormValue("confirm") != "yes" {
		return c.Redirect(cmsRedirect(tab, "error", "Tick confirm to delete"), fiber.StatusSeeOther)
	}
	id, err := uuid.Parse(c.FormValue("id"))
	if err != nil {
		return c.Redirect(cmsRedirect(tab, "error", "Invalid content id"), fiber.StatusSeeOther)
	}
	if err := ctrl.content().Delete(c.UserContext(), id); err != nil {
		_, msg := helper.Classify(err)
		return c.Redirect(cmsRedirect(tab, "error", msg), fiber.StatusSeeOther)
	}
	return c.Redirect(cmsRedirect(tab, "notice", "Content deleted"), fiber.StatusSeeOther)
}

// GET /admin/setup
func (ctrl *AdminPageController) Setup(c *fiber.Ctx) error {
	return render(c, "admin/setup", fiber.Map{"Title": "Setup"})
}
