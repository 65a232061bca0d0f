// Package category provides HTTP handlers for category endpoints.
package category

import (
	"context"
	"encoding/json"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/pagecache"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/infra/cache"
	"newsdesk/internal/revalidate"
	catUC "newsdesk/internal/usecase/category"
)

// Service is the subset of the category use cases the handlers call.
type Service interface {
	List(ctx context.Context) ([]*entity.Category, error)
	IsInUse(ctx context.Context, id int64) (bool, error)
	Add(ctx context.Context, in catUC.Input) (*entity.Category, error)
	Update(ctx context.Context, id int64, in catUC.Input) (*entity.Category, error)
	Delete(ctx context.Context, id int64) error
}

var _ Service = (*catUC.Service)(nil)

// DTO represents the JSON structure for category data transfer.
type DTO struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Technology"`
	Slug string `json:"slug" example:"technology"`
	Icon string `json:"icon,omitempty" example:"Cpu"`
}

// AdminDTO adds the delete guard state for the admin table.
type AdminDTO struct {
	DTO
	InUse bool `json:"inUse" example:"true"`
}

func toDTO(c *entity.Category) DTO {
	return DTO{ID: c.ID, Name: c.Name, Slug: c.Slug, Icon: c.Icon}
}

// Register registers the category routes. Routes under /admin rely on the session gate.
func Register(mux *http.ServeMux, svc Service, pages *cache.PageCache) {
	mux.Handle("GET /categories", ListHandler{Svc: svc, Cache: pages})

	mux.Handle("GET /admin/categories", AdminListHandler{svc})
	mux.Handle("POST /admin/categories", CreateHandler{svc})
	mux.Handle("PUT /admin/categories/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /admin/categories/{id}", DeleteHandler{svc})
}

// ListHandler serves the public category list.
type ListHandler struct {
	Svc   Service
	Cache *cache.PageCache
}

// ServeHTTP カテゴリ一覧取得
// @Summary      カテゴリ一覧取得
// @Description  すべてのカテゴリを登録順に取得します
// @Tags         categories
// @Produce      json
// @Success      200 {array}  DTO "カテゴリ一覧"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /categories [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	deps := []revalidate.Key{revalidate.CategoryListing()}
	pagecache.Serve(w, r, h.Cache, "/categories", deps, func(ctx context.Context) (any, error) {
		cats, err := h.Svc.List(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]DTO, 0, len(cats))
		for _, c := range cats {
			out = append(out, toDTO(c))
		}
		return out, nil
	})
}

// AdminListHandler serves the admin category table.
type AdminListHandler struct{ Svc Service }

// ServeHTTP 管理用カテゴリ一覧取得
// @Summary      管理用カテゴリ一覧取得
// @Description  カテゴリ一覧を記事での使用状況とともに取得します
// @Tags         admin-categories
// @Security     SessionCookie
// @Produce      json
// @Success      200 {array}  AdminDTO "カテゴリ一覧"
// @Failure      403 {object} respond.ErrorBody "セッションなし"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /admin/categories [get]
func (h AdminListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cats, err := h.Svc.List(ctx)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	out := make([]AdminDTO, 0, len(cats))
	for _, c := range cats {
		used, err := h.Svc.IsInUse(ctx, c.ID)
		if err != nil {
			respond.Failure(w, r, err)
			return
		}
		out = append(out, AdminDTO{DTO: toDTO(c), InUse: used})
	}
	respond.JSON(w, http.StatusOK, out)
}

// CreateHandler adds a category.
type CreateHandler struct{ Svc Service }

// ServeHTTP カテゴリ作成
// @Summary      カテゴリ作成
// @Description  カテゴリを追加します。slugは名前から生成されます。
// @Tags         admin-categories
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        category body catUC.Input true "カテゴリ情報"
// @Success      201 {object} DTO "作成されたカテゴリ"
// @Failure      400 {object} respond.ErrorBody "入力エラー"
// @Failure      413 {object} respond.ErrorBody "リクエストボディが大きすぎる"
// @Failure      403 {object} respond.ErrorBody "セッションなし"
// @Failure      409 {object} respond.ErrorBody "名前が重複"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /admin/categories [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in catUC.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.BadBody(w, err)
		return
	}
	cat, err := h.Svc.Add(r.Context(), in)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(cat))
}

// UpdateHandler renames a category.
type UpdateHandler struct{ Svc Service }

// ServeHTTP カテゴリ更新
// @Summary      カテゴリ更新
// @Description  カテゴリ名とアイコンを更新します。slugは新しい名前から再生成されます。
// @Tags         admin-categories
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id       path int         true "カテゴリID"
// @Param        category body catUC.Input true "カテゴリ情報"
// @Success      200 {object} DTO "更新されたカテゴリ"
// @Failure      400 {object} respond.ErrorBody "入力エラー"
// @Failure      413 {object} respond.ErrorBody "リクエストボディが大きすぎる"
// @Failure      403 {object} respond.ErrorBody "セッションなし"
// @Failure      404 {object} respond.ErrorBody "カテゴリが存在しない"
// @Failure      409 {object} respond.ErrorBody "名前が重複"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /admin/categories/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := categoryID(w, r)
	if !ok {
		return
	}
	var in catUC.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.BadBody(w, err)
		return
	}
	cat, err := h.Svc.Update(r.Context(), id, in)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(cat))
}

// DeleteHandler removes an unused category.
type DeleteHandler struct{ Svc Service }

// ServeHTTP カテゴリ削除
// @Summary      カテゴリ削除
// @Description  記事から参照されていないカテゴリを削除します。使用中の場合は412を返し、何も変更しません。
// @Tags         admin-categories
// @Security     SessionCookie
// @Param        id path int true "カテゴリID"
// @Success      204 "No Content"
// @Failure      400 {object} respond.ErrorBody "不正なID"
// @Failure      403 {object} respond.ErrorBody "セッションなし"
// @Failure      404 {object} respond.ErrorBody "カテゴリが存在しない"
// @Failure      412 {object} respond.ErrorBody "使用中"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /admin/categories/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := categoryID(w, r)
	if !ok {
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.Failure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func categoryID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Failure(w, r, catUC.ErrInvalidCategoryID)
		return 0, false
	}
	return id, true
}
