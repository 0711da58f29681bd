package testinfra

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"rolegate/domain"
	"rolegate/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

// BuildSecCtx build security context
func BuildSecCtx(uid types.ID, globalRole string, projectRoles ...domain.ProjectRelation) *session.Context {
	for i := range projectRoles {
		projectRoles[i].PrincipalID = uid
	}
	return &session.Context{
		Token:        "test-token",
		Identity:     session.Identity{ID: uid, Name: "user " + uid.String()},
		GlobalRole:   globalRole,
		ProjectRoles: projectRoles,
	}
}

func ExecuteRequest(req *http.Request, router *gin.Engine) (int, string, http.Header) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	resp := w.Result()
	defer resp.Body.Close()
	bodyBytes, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		panic(err)
	}
	return resp.StatusCode, string(bodyBytes), resp.Header
}
