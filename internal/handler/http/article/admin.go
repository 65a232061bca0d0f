package article

import (
	"encoding/json"
	"net/http"
	"strings"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

// AdminListHandler serves the admin article table, drafts included. It is never cached.
type AdminListHandler struct{ Svc Service }

// ServeHTTP 管理用記事一覧取得
// @Summary      管理用記事一覧取得
// @Description  下書きを含むすべての記事をページ単位で取得します
// @Tags         admin-articles
// @Security     SessionCookie
// @Produce      json
// @Param        page      query    int     false  "ページ番号 (1-based)" default(1) minimum(1)
// @Param        category  query    string  false  "カテゴリslug"
// @Success      200 {object} ListResponse "ページネーション付き記事一覧"
// @Failure      403 {object} respond.ErrorBody "セッションなし"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /admin/articles [get]
func (h AdminListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.Svc.List(r.Context(), artUC.ListQuery{
		Page:         pagination.ParsePage(q.Get("page")),
		CategorySlug: strings.TrimSpace(q.Get("category")),
	})
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toListResponse(res.Data, res.Pagination, res.CategorySlug))
}

// AdminGetHandler returns an article for the editor.
type AdminGetHandler struct{ Svc Service }

// ServeHTTP 管理用記事取得
// @Summary      管理用記事取得
// @Description  指定されたIDの記事を取得します（下書きを含む）
// @Tags         admin-articles
// @Security     SessionCookie
// @Produce      json
// @Param        id path int true "記事ID"
// @Success      200 {object} DTO "記事詳細"
// @Failure      400 {object} respond.ErrorBody "不正なID"
// @Failure      403 {object} respond.ErrorBody "セッションなし"
// @Failure      404 {object} respond.ErrorBody "記事が存在しない"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /admin/articles/{id} [get]
func (h AdminGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := articleID(w, r)
	if !ok {
		return
	}
	found, err := h.Svc.GetForEdit(r.Context(), id)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, fromRow(*found))
}

// CreateHandler runs the create pipeline.
type CreateHandler struct{ Svc Service }

// ServeHTTP 記事作成
// @Summary      記事作成
// @Description  新しい記事を作成します。公開日は作成時刻になります。
// @Tags         admin-articles
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        article body artUC.Input true "記事情報"
// @Success      201 {object} DTO "作成された記事"
// @Failure      400 {object} respond.ErrorBody "入力エラー"
// @Failure      413 {object} respond.ErrorBody "リクエストボディが大きすぎる"
// @Failure      403 {object} respond.ErrorBody "セッションなし"
// @Failure      409 {object} respond.ErrorBody "slugが重複"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /admin/articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var in artUC.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.BadBody(w, err)
		return
	}
	created, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(created, "", ""))
}

// UpdateHandler runs the update pipeline.
type UpdateHandler struct{ Svc Service }

// ServeHTTP 記事更新
// @Summary      記事更新
// @Description  記事を更新します。公開日は変更されません。
// @Tags         admin-articles
// @Security     SessionCookie
// @Accept       json
// @Produce      json
// @Param        id      path int          true "記事ID"
// @Param        article body artUC.Input  true "記事情報"
// @Success      200 {object} DTO "更新された記事"
// @Failure      400 {object} respond.ErrorBody "入力エラー"
// @Failure      413 {object} respond.ErrorBody "リクエストボディが大きすぎる"
// @Failure      403 {object} respond.ErrorBody "セッションなし"
// @Failure      404 {object} respond.ErrorBody "記事が存在しない"
// @Failure      409 {object} respond.ErrorBody "slugが重複"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /admin/articles/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := articleID(w, r)
	if !ok {
		return
	}
	var in artUC.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.BadBody(w, err)
		return
	}
	updated, err := h.Svc.Update(r.Context(), id, in)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(updated, "", ""))
}

// DeleteHandler runs the delete pipeline.
type DeleteHandler struct{ Svc Service }

// ServeHTTP 記事削除
// @Summary      記事削除
// @Description  記事を削除します
// @Tags         admin-articles
// @Security     SessionCookie
// @Param        id path int true "記事ID"
// @Success      204 "No Content"
// @Failure      400 {object} respond.ErrorBody "不正なID"
// @Failure      403 {object} respond.ErrorBody "セッションなし"
// @Failure      404 {object} respond.ErrorBody "記事が存在しない"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /admin/articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := articleID(w, r)
	if !ok {
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.Failure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SlugAvailableHandler reports whether a slug is free for a new or edited article.
type SlugAvailableHandler struct{ Svc Service }

// ServeHTTP slug重複チェック
// @Summary      slug重複チェック
// @Description  slugが未使用かどうかを返します。excludeに編集中の記事IDを指定すると、その記事自身のslugは使用中とみなしません。
// @Tags         admin-articles
// @Security     SessionCookie
// @Produce      json
// @Param        slug     query string true  "確認するslug"
// @Param        exclude  query int    false "除外する記事ID"
// @Success      200 {object} SlugAvailability "結果"
// @Failure      400 {object} respond.ErrorBody "入力エラー"
// @Failure      413 {object} respond.ErrorBody "リクエストボディが大きすぎる"
// @Failure      403 {object} respond.ErrorBody "セッションなし"
// @Failure      500 {object} respond.ErrorBody "サーバーエラー"
// @Router       /admin/articles/slug-available [get]
func (h SlugAvailableHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	slug := strings.TrimSpace(q.Get("slug"))
	if err := entity.ValidateSlug("slug", slug); err != nil {
		respond.Failure(w, r, err)
		return
	}

	var exclude int64
	if raw := q.Get("exclude"); raw != "" {
		id, err := pathutil.ParseID(raw)
		if err != nil {
			respond.Failure(w, r, &entity.Error{Kind: entity.KindValidation, Field: "exclude", Message: "invalid exclude id"})
			return
		}
		exclude = id
	}

	free, err := h.Svc.CheckSlugUnique(r.Context(), slug, exclude)
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, SlugAvailability{Slug: slug, Available: free})
}

func articleID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Failure(w, r, artUC.ErrInvalidArticleID)
		return 0, false
	}
	return id, true
}
