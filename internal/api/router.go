package api

import (
	"net/http"
	"time"

	"masjidhub-backend/internal/service"

	"github.com/gorilla/mux"
)

// Server wires the HTTP surface to the service layer.
type Server struct {
	adminSvc      service.AdminService
	authSvc       service.AuthService
	communitySvc  service.CommunityService
	financeSvc    service.FinanceService
	forumSvc      service.ForumService
	enrollmentSvc service.EnrollmentService
	sessionTTL    time.Duration
}

func NewServer(
	adminSvc service.AdminService,
	authSvc service.AuthService,
	communitySvc service.CommunityService,
	financeSvc service.FinanceService,
	forumSvc service.ForumService,
	enrollmentSvc service.EnrollmentService,
	sessionTTL time.Duration,
) *Server {
	return &Server{
		adminSvc:      adminSvc,
		authSvc:       authSvc,
		communitySvc:  communitySvc,
		financeSvc:    financeSvc,
		forumSvc:      forumSvc,
		enrollmentSvc: enrollmentSvc,
		sessionTTL:    sessionTTL,
	}
}

// Router builds the full route table. Public routes take no session; everything
// under the authed subrouter goes through RequireSession.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(requestLogging)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	// Public surface.
	r.HandleFunc("/api/admin/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/api/admin/logout", s.handleLogout).Methods(http.MethodPost)
	r.HandleFunc("/api/societies", s.handleListSocieties).Methods(http.MethodGet)
	r.HandleFunc("/api/societies/{id:[0-9]+}", s.handleGetSociety).Methods(http.MethodGet)
	r.HandleFunc("/api/societies/{id:[0-9]+}/residents", s.handleRegisterResident).Methods(http.MethodPost)
	r.HandleFunc("/api/societies/{id:[0-9]+}/discussions", s.handleListDiscussions).Methods(http.MethodGet)
	r.HandleFunc("/api/societies/{id:[0-9]+}/discussions", s.handleCreateDiscussion).Methods(http.MethodPost)
	r.HandleFunc("/api/discussions/{id:[0-9]+}/replies", s.handleListReplies).Methods(http.MethodGet)
	r.HandleFunc("/api/discussions/{id:[0-9]+}/replies", s.handleAddReply).Methods(http.MethodPost)
	r.HandleFunc("/api/societies/{id:[0-9]+}/proposals", s.handleListProposals).Methods(http.MethodGet)
	r.HandleFunc("/api/proposals/{id:[0-9]+}/votes", s.handleCastVote).Methods(http.MethodPost)
	r.HandleFunc("/api/donations", s.handleRecordDonation).Methods(http.MethodPost)
	r.HandleFunc("/api/enrollments", s.handleApplyEnrollment).Methods(http.MethodPost)

	// Authenticated surface.
	authed := r.PathPrefix("/api").Subrouter()
	authed.Use(s.RequireSession)
	authed.HandleFunc("/admin/current", s.handleCurrentSession).Methods(http.MethodGet)
	authed.HandleFunc("/admins", s.handleListAdmins).Methods(http.MethodGet)
	authed.HandleFunc("/admins", s.handleCreateAdmin).Methods(http.MethodPost)
	authed.HandleFunc("/admins/{id:[0-9]+}/approve", s.handleApproveAdmin).Methods(http.MethodPost)
	authed.HandleFunc("/admins/{id:[0-9]+}/status", s.handleSetAdminStatus).Methods(http.MethodPatch)
	authed.HandleFunc("/societies", s.handleCreateSociety).Methods(http.MethodPost)
	authed.HandleFunc("/societies/{id:[0-9]+}/residents", s.handleListResidents).Methods(http.MethodGet)
	authed.HandleFunc("/residents/{id:[0-9]+}/status", s.handleSetResidentStatus).Methods(http.MethodPatch)
	authed.HandleFunc("/societies/{id:[0-9]+}/contributions", s.handleListContributions).Methods(http.MethodGet)
	authed.HandleFunc("/contributions/{id:[0-9]+}/pay", s.handleMarkContributionPaid).Methods(http.MethodPost)
	authed.HandleFunc("/societies/{id:[0-9]+}/expenses", s.handleListExpenses).Methods(http.MethodGet)
	authed.HandleFunc("/societies/{id:[0-9]+}/expenses", s.handleRecordExpense).Methods(http.MethodPost)
	authed.HandleFunc("/donations", s.handleListDonations).Methods(http.MethodGet)
	authed.HandleFunc("/societies/{id:[0-9]+}/proposals", s.handleCreateProposal).Methods(http.MethodPost)
	authed.HandleFunc("/proposals/{id:[0-9]+}/close", s.handleCloseProposal).Methods(http.MethodPost)
	authed.HandleFunc("/enrollments", s.handleListEnrollments).Methods(http.MethodGet)
	authed.HandleFunc("/enrollments/{id:[0-9]+}/status", s.handleSetEnrollmentStatus).Methods(http.MethodPatch)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
