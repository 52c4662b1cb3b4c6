package orders

import (
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/storefront/internal/services/storefront/platform/errors"
	"github.com/louisbranch/storefront/internal/services/storefront/platform/modulehandler"
	"github.com/louisbranch/storefront/internal/services/storefront/routepath"
	"github.com/louisbranch/storefront/internal/services/storefront/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	status := NormalizeStatus(r.URL.Query().Get(routepath.OrdersStatusQueryKey))
	ctx, token := h.RequestContextAndToken(r)
	orders, err := h.service.list(ctx, token, status)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	page := h.PageContext(r)
	summaries := make([]templates.OrderSummary, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, orderSummary(order))
	}
	view := templates.OrdersView{
		PageContext: page,
		Orders:      summaries,
		Status:      status,
		Statuses:    Statuses(),
	}
	h.WritePage(w, r, page.T("shop.orders.title"), http.StatusOK, templates.OrdersPage(view))
}

func (h handlers) handleDetailRoute(w http.ResponseWriter, r *http.Request) {
	ctx, token := h.RequestContextAndToken(r)
	order, err := h.service.get(ctx, token, r.PathValue("orderID"))
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			h.WriteNotFound(w, r)
			return
		}
		h.WriteError(w, r, err)
		return
	}
	page := h.PageContext(r)
	view := templates.OrderDetailView{PageContext: page, Order: orderSummary(order)}
	h.WritePage(w, r, page.T("shop.orders.detail_title", order.ID), http.StatusOK, templates.OrderDetailPage(view))
}

func orderSummary(order Order) templates.OrderSummary {
	lines := make([]templates.OrderLine, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, templates.OrderLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			ImageURL:  line.ImageURL,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}
	return templates.OrderSummary{
		ID:              order.ID,
		Date:            order.Date,
		Status:          strings.ToUpper(order.Status),
		Total:           order.Total,
		Items:           lines,
		ShippingAddress: order.ShippingAddress,
		PaymentMethod:   order.PaymentMethod,
	}
}
