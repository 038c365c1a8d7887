package http

import (
	"freshcart/internal/core/application/usecases/queries"
	"freshcart/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toStatus(v queries.StatusView) servers.Status {
	return servers.Status{
		Code:   v.Code,
		Label:  v.Label,
		Bucket: servers.Bucket(v.Bucket),
	}
}

func toOrder(r queries.GetOrderQueryResponse) servers.Order {
	o := servers.Order{
		Id:                  r.ID.Bytes(),
		CustomerId:          r.CustomerID.Bytes(),
		Status:              toStatus(r.Status),
		PaymentMethod:       r.PaymentMethod,
		PaymentStatus:       r.PaymentStatus,
		PlacedAt:            r.PlacedAt,
		DeliveryCompletedAt: r.DeliveryCompletedAt,
		Version:             r.Version,
		StatusTimeline:      make([]servers.TimelineEntry, len(r.Timeline)),
	}

	if r.DeliveryPartnerID != nil {
		var partnerID openapi_types.UUID = r.DeliveryPartnerID.Bytes()
		o.DeliveryPartnerId = &partnerID
	}

	for i, entry := range r.Timeline {
		o.StatusTimeline[i] = servers.TimelineEntry{
			Status:    toStatus(entry.Status),
			Timestamp: entry.At,
		}
	}

	return o
}

func toCustomerOrderGroups(groups []queries.CustomerOrderGroup) []servers.CustomerOrderGroup {
	out := make([]servers.CustomerOrderGroup, len(groups))
	for i, g := range groups {
		orders := make([]servers.CustomerOrder, len(g.Orders))
		for j, item := range g.Orders {
			orders[j] = servers.CustomerOrder{
				Id:            item.ID.Bytes(),
				Status:        toStatus(item.Status),
				PaymentMethod: item.PaymentMethod,
				PaymentStatus: item.PaymentStatus,
				PlacedAt:      item.PlacedAt,
			}
			if item.CustomerOTP != "" {
				code := item.CustomerOTP
				orders[j].CustomerOtp = &code
			}
		}
		out[i] = servers.CustomerOrderGroup{
			Bucket: servers.Bucket(g.Bucket),
			Orders: orders,
		}
	}
	return out
}
