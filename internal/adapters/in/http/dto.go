package http

import (
	"time"

	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/courier"
	"fastfeet/internal/core/domain/model/file"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/domain/model/problem"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/core/domain/model/user"
)

// Request bodies.

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Provider bool   `json:"provider"`
}

type sessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createRecipientRequest struct {
	Name        string `json:"name"`
	SignatureID int64  `json:"signature_id"`
	Street      string `json:"street"`
	Number      string `json:"number"`
	Details     string `json:"details"`
	State       string `json:"state"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
}

type courierRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	AvatarID int64  `json:"avatar_id"`
}

type createOrderRequest struct {
	RecipientID int64     `json:"recipient_id"`
	CourierID   int64     `json:"courier_id"`
	SignatureID int64     `json:"signature_id"`
	Product     string    `json:"product"`
	StartDate   time.Time `json:"start_date"`
}

type reportProblemRequest struct {
	Description string `json:"description"`
}

// Response bodies.

type userResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Provider bool   `json:"provider"`
}

func newUserResponse(u *user.User) userResponse {
	return userResponse{
		ID:       u.ID(),
		Name:     u.Name(),
		Email:    u.Email(),
		Provider: u.Provider(),
	}
}

type sessionResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type fileResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

func newFileResponse(f *file.File) fileResponse {
	return fileResponse{
		ID:   f.ID(),
		Name: f.Name(),
		Path: f.Path(),
		URL:  f.URL(),
	}
}

type courierResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	AvatarID int64  `json:"avatar_id"`
}

func newCourierResponse(c *courier.Courier) courierResponse {
	return courierResponse{
		ID:       c.ID(),
		Name:     c.Name(),
		Email:    c.Email(),
		AvatarID: c.AvatarID(),
	}
}

type addressResponse struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Details    string `json:"details,omitempty"`
	State      string `json:"state"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

type recipientResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	SignatureID int64           `json:"signature_id,omitempty"`
	Address     addressResponse `json:"address"`
}

func newRecipientResponse(r *recipient.Recipient) recipientResponse {
	addr := r.Address()
	return recipientResponse{
		ID:          r.ID(),
		Name:        r.Name(),
		SignatureID: r.SignatureID(),
		Address: addressResponse{
			Street:     addr.Street(),
			Number:     addr.Number(),
			Details:    addr.Details(),
			State:      addr.State(),
			City:       addr.City(),
			PostalCode: addr.PostalCode(),
		},
	}
}

type orderResponse struct {
	ID          int64      `json:"id"`
	RecipientID int64      `json:"recipient_id"`
	CourierID   int64      `json:"courier_id"`
	SignatureID int64      `json:"signature_id"`
	Product     string     `json:"product"`
	Status      string     `json:"status"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CanceledAt  *time.Time `json:"canceled_at,omitempty"`
}

func newOrderResponse(o *order.Order) orderResponse {
	return orderResponse{
		ID:          o.ID(),
		RecipientID: o.RecipientID(),
		CourierID:   o.CourierID(),
		SignatureID: o.SignatureID(),
		Product:     o.Product(),
		Status:      o.Status().String(),
		StartDate:   o.StartDate(),
		EndDate:     o.EndDate(),
		CanceledAt:  o.CanceledAt(),
	}
}

type problemResponse struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"order_id"`
	Description string `json:"description"`
}

func newProblemResponse(p *problem.Problem) problemResponse {
	return problemResponse{
		ID:          p.ID(),
		OrderID:     p.OrderID(),
		Description: p.Description(),
	}
}

// Listing responses, mapped from the query read models.

type listedCourier struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func newListedCouriers(rows []queries.ListCouriersQueryResponse) []listedCourier {
	out := make([]listedCourier, len(rows))
	for i, row := range rows {
		out[i] = listedCourier{
			ID:        row.ID,
			Name:      row.Name,
			Email:     row.Email,
			AvatarURL: row.AvatarURL,
		}
	}
	return out
}

type listedOrderCourier struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type listedOrderRecipient struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	State      string `json:"state"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

func newListedOrderRecipient(row queries.OrderRecipientResponse) listedOrderRecipient {
	return listedOrderRecipient{
		ID:         row.ID,
		Name:       row.Name,
		Street:     row.Street,
		Number:     row.Number,
		State:      row.State,
		City:       row.City,
		PostalCode: row.PostalCode,
	}
}

type listedOrder struct {
	ID        int64                `json:"id"`
	Product   string               `json:"product"`
	Status    string               `json:"status"`
	StartDate time.Time            `json:"start_date"`
	EndDate   *time.Time           `json:"end_date,omitempty"`
	Courier   listedOrderCourier   `json:"courier"`
	Recipient listedOrderRecipient `json:"recipient"`
}

func newListedOrders(rows []queries.ListOrdersQueryResponse) []listedOrder {
	out := make([]listedOrder, len(rows))
	for i, row := range rows {
		out[i] = listedOrder{
			ID:        row.ID,
			Product:   row.Product,
			Status:    row.Status,
			StartDate: row.StartDate,
			EndDate:   row.EndDate,
			Courier: listedOrderCourier{
				ID:    row.Courier.ID,
				Name:  row.Courier.Name,
				Email: row.Courier.Email,
			},
			Recipient: newListedOrderRecipient(row.Recipient),
		}
	}
	return out
}

type listedCourierOrder struct {
	ID        int64                `json:"id"`
	Product   string               `json:"product"`
	Status    string               `json:"status"`
	StartDate time.Time            `json:"start_date"`
	EndDate   *time.Time           `json:"end_date,omitempty"`
	Recipient listedOrderRecipient `json:"recipient"`
}

func newListedCourierOrders(rows []queries.ListOrdersByCourierQueryResponse) []listedCourierOrder {
	out := make([]listedCourierOrder, len(rows))
	for i, row := range rows {
		out[i] = listedCourierOrder{
			ID:        row.ID,
			Product:   row.Product,
			Status:    row.Status,
			StartDate: row.StartDate,
			EndDate:   row.EndDate,
			Recipient: newListedOrderRecipient(row.Recipient),
		}
	}
	return out
}

type listedProblem struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"order_id"`
	Product     string `json:"product"`
	Description string `json:"description"`
}

func newListedProblems(rows []queries.ListProblemsQueryResponse) []listedProblem {
	out := make([]listedProblem, len(rows))
	for i, row := range rows {
		out[i] = listedProblem{
			ID:          row.ID,
			OrderID:     row.OrderID,
			Product:     row.Product,
			Description: row.Description,
		}
	}
	return out
}
