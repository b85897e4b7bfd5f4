package i18n

// catalog carries the full UI copy per locale. Keys are shared across
// locales; English is the reference set.
var catalog = map[string]map[string]string{
	"en": {
		"badge.beta":                      "Beta",
		"nav.home":                        "Home",
		"nav.profiles":                    "Profiles",
		"nav.events":                      "Events",
		"nav.rosters":                     "Rosters",
		"nav.federations":                 "Federations",
		"nav.about":                       "About",
		"locale.label":                    "Choose language",
		"action.login":                    "Log in",
		"action.signup":                   "Create account",
		"footer.powered":                  "Trackeo · API base:",
		"footer.location":                 "Headquartered in Atlanta, GA · Scaling across South America with localized partners.",
		"hero.eyebrow":                    "Latin American Athletics Intelligence",
		"hero.title":                      "Trackeo connects federations, coaches, and fans across the Americas.",
		"hero.description":                "Explore verified performances, multilingual news, and premium insights that highlight the rise of track & field from São Paulo to Bogotá. Built in Atlanta for the continent.",
		"hero.explore":                    "Explore as guest",
		"hero.subscribe":                  "View coach plans",
		"preview.title":                   "Regional spotlight",
		"preview.subtitle":                "19 federations streaming live splits and heat sheets.",
		"preview.metric_meets":            "Verified meets",
		"preview.metric_athletes":         "Athletes tracked",
		"preview.metric_rosters":          "Roster updates",
		"search.title":                    "Search Trackeo's universe",
		"search.subtitle":                 "Find athletes, events, rosters, and bilingual news in one place.",
		"search.placeholder":              "Search for an athlete, club, or meet",
		"search.aria":                     "Search Trackeo",
		"search.filters":                  "Search categories",
		"search.filter_all":               "All",
		"search.filter_athletes":          "Athletes",
		"search.filter_events":            "Events",
		"search.filter_rosters":           "Rosters",
		"search.filter_news":              "News",
		"search.empty":                    "Start typing to explore Trackeo's data universe.",
		"search.no_results":               "No matches yet. Try adjusting your filters or spelling.",
		"home.athletes_title":             "Athletes",
		"home.athletes_subtitle":          "Browse the roster or showcase a rising star from your federation.",
		"home.athletes_seed":              "Reload Sample Athletes",
		"home.athletes_form_title":        "Create athlete profile",
		"home.athletes_submit":            "Register athlete",
		"home.athletes_empty":             "No athletes have been registered yet.",
		"home.athletes_hint":              "Use the creation form or load curated sample athletes to populate the roster.",
		"home.events_title":               "Events",
		"home.events_subtitle":            "Track the latest competitions from Atlanta to Buenos Aires.",
		"home.events_seed":                "Reload Sample Events",
		"home.events_form_title":          "Schedule a new meet",
		"home.events_submit":              "Create event",
		"home.events_empty":               "No events have been scheduled yet.",
		"home.events_hint":                "Use the meet form or reload the curated calendar of sample events.",
		"home.rosters_title":              "Rosters",
		"home.rosters_subtitle":           "Keep squads aligned with verified athlete eligibility.",
		"home.rosters_empty":              "No rosters available yet.",
		"home.rosters_hint":               "Federations upload rosters directly for instant publication.",
		"home.news_title":                 "News",
		"home.news_subtitle":              "Bilingual coverage powered by Trackeo correspondents and partners.",
		"home.news_empty":                 "No news stories have been published yet.",
		"home.news_hint":                  "Follow Trackeo Insights for the latest headlines.",
		"premium.title":                   "Coach & Federation tiers",
		"premium.subtitle":                "Unlock deep analytics, heat maps, and race video archives tailored to your role.",
		"premium.compare":                 "Compare plans",
		"premium.guest_title":             "Guest",
		"premium.guest_price":             "Free",
		"premium.guest_benefit_1":         "Open event calendar",
		"premium.guest_benefit_2":         "Headline stats and news highlights",
		"premium.guest_benefit_3":         "Regional localization (ES/PT)",
		"premium.premium_title":           "Premium",
		"premium.premium_price":           "$9 / month",
		"premium.premium_benefit_1":       "Full athlete history & season analytics",
		"premium.premium_benefit_2":       "Video library with race markers",
		"premium.premium_benefit_3":       "Priority support in English & Spanish",
		"premium.coach_title":             "Coach",
		"premium.coach_price":             "$29 / month",
		"premium.coach_benefit_1":         "Roster syncing with federation data",
		"premium.coach_benefit_2":         "Practice planning & workload insights",
		"premium.coach_benefit_3":         "Invite athletes and manage staff",
		"home.federations_title":          "Federations upload securely",
		"home.federations_subtitle":       "Trusted partners share verified performances through Trackeo's ingestion APIs.",
		"home.federations_cta":            "Submit official results",
		"home.federations_card_1_title":   "Verified pipelines",
		"home.federations_card_1_body":    "Encrypted submissions with audit trails ensure accuracy before publishing.",
		"home.federations_card_2_title":   "Localized infrastructure",
		"home.federations_card_2_body":    "Edge nodes in São Paulo, Bogotá, and Santiago reduce upload latency.",
		"home.federations_card_3_title":   "Atlanta operations",
		"home.federations_card_3_body":    "On-the-ground support from Trackeo HQ keeps every federation onboarding smooth.",
		"form.full_name":                  "Full name",
		"form.full_name_placeholder":      "Jane Runner",
		"form.email":                      "Email",
		"form.email_placeholder":          "you@example.com",
		"form.role":                       "Role",
		"form.role_placeholder":           "athlete",
		"form.password":                   "Password",
		"form.password_placeholder":       "Password123",
		"form.event_name":                 "Name",
		"form.event_name_placeholder":     "Summer Invitational",
		"form.location":                   "Location",
		"form.location_placeholder":       "Lisbon, Portugal",
		"form.start_date":                 "Start date",
		"form.end_date":                   "End date",
		"form.federation_id":              "Federation ID",
		"form.federation_id_placeholder":  "Optional",
		"profiles.title":                  "Athlete & staff profiles",
		"profiles.subtitle":               "Search federated accounts with verified event history and multilingual bios.",
		"profiles.refresh":                "Refresh profiles",
		"profiles.create":                 "Create new profile",
		"profiles.list_title":             "Directory",
		"profiles.list_subtitle":          "Live data from the Trackeo accounts service.",
		"profiles.filter_placeholder":     "Filter by name or email",
		"profiles.filter_aria":            "Filter profiles",
		"profiles.empty":                  "No profiles were found.",
		"profiles.hint":                   "Adjust your filters or create a new account from the sign-up view.",
		"events.title":                    "Competition calendar",
		"events.subtitle":                 "Monitor official meets created by federations and Trackeo partners.",
		"events.create":                   "Schedule event",
		"events.refresh":                  "Refresh",
		"events.list_title":               "Upcoming & recent meets",
		"events.list_subtitle":            "Data is sourced from the events service and updates instantly.",
		"events.filter_upcoming":          "Show only upcoming",
		"events.empty":                    "No events are published yet.",
		"events.hint":                     "Create a meet or ask your federation to upload an official calendar.",
		"rosters.title":                   "Federation rosters",
		"rosters.subtitle":                "Track eligibility, divisions, and staffing with live updates from the roster service.",
		"rosters.refresh":                 "Refresh rosters",
		"rosters.list_title":              "Latest submissions",
		"rosters.list_subtitle":           "Verified rosters arrive through secure federation uploads.",
		"rosters.filter_placeholder":      "Filter by club or country",
		"rosters.filter_aria":             "Filter rosters",
		"rosters.empty":                   "No rosters are available yet.",
		"rosters.hint":                    "Federations can upload a roster file from the secure upload view.",
		"login.title":                     "Sign in to Trackeo",
		"login.subtitle":                  "Use your verified email address to access premium federation tools.",
		"login.submit":                    "Sign in",
		"login.switch":                    "Need an account?",
		"login.switch_link":               "Create one now.",
		"signup.title":                    "Create your Trackeo account",
		"signup.subtitle":                 "Join Trackeo to manage rosters, follow events, and unlock analytics.",
		"signup.tier":                     "Subscription tier",
		"signup.tier_free":                "Free",
		"signup.tier_premium":             "Premium",
		"signup.tier_coach":               "Coach",
		"signup.tier_federation":          "Federation",
		"signup.role_fan":                 "Fan",
		"signup.role_athlete":             "Athlete",
		"signup.role_coach":               "Coach",
		"signup.role_federation":          "Federation",
		"signup.role_scout":               "Scout",
		"signup.submit":                   "Create account",
		"signup.switch":                   "Already registered?",
		"signup.switch_link":              "Sign in.",
		"federations.title":               "Secure federation uploads",
		"federations.subtitle":            "Submit encrypted result bundles with audit trails and automated verification.",
		"federations.refresh":             "Refresh submissions",
		"federations.form_title":          "Upload official files",
		"federations.form_subtitle":       "Provide a signed storage link. Trackeo validates checksum and processes asynchronously.",
		"federations.token":               "Access token",
		"federations.token_placeholder":   "Bearer token",
		"federations.name":                "Federation name",
		"federations.name_placeholder":    "Confederación Sudamericana",
		"federations.email_placeholder":   "contact@federation.org",
		"federations.payload":             "Secure payload URL",
		"federations.payload_placeholder": "https://storage.example.com/results.json",
		"federations.notes":               "Notes (optional)",
		"federations.notes_placeholder":   "Describe the event or include validation hints",
		"federations.submit":              "Submit for processing",
		"federations.submissions_title":   "Submission history",
		"federations.submissions_subtitle": "Track processing, checksum validation, and verification status.",
		"federations.submissions_empty":   "No submissions yet. Upload your first official file to begin.",
		"about.title":                     "About Trackeo",
		"about.subtitle":                  "Built in Atlanta and powered by federations across Latin America.",
		"about.mission_title":             "Mission",
		"about.mission_subtitle":          "We amplify athletes with trusted data, multilingual coverage, and equitable access.",
		"about.mission_body_1":            "Trackeo centralizes competition data for 19 federations while delivering insights in English, Spanish, and Portuguese.",
		"about.mission_body_2":            "Our platform supports coaches with workload analytics, empowers fans with contextual storytelling, and streamlines compliance for federation staff.",
		"about.team_title":                "Team & partners",
		"about.team_subtitle":             "Trackeo collaborates with local statisticians, journalists, and federations throughout the region.",
		"about.team_item_1_title":         "Atlanta HQ",
		"about.team_item_1_body":          "Product, engineering, and partnerships operate from Atlanta, coordinating multilingual coverage.",
		"about.team_item_2_title":         "Regional bureaus",
		"about.team_item_2_body":          "Embedded correspondents in Bogotá, São Paulo, Santiago, and Mexico City file news and verify results.",
		"about.team_item_3_title":         "Federation council",
		"about.team_item_3_body":          "An advisory council of federation leaders ensures Trackeo meets security and accessibility standards.",
	},
	"es": {
		"badge.beta":                      "Beta",
		"nav.home":                        "Inicio",
		"nav.profiles":                    "Perfiles",
		"nav.events":                      "Eventos",
		"nav.rosters":                     "Planteles",
		"nav.federations":                 "Federaciones",
		"nav.about":                       "Acerca de",
		"locale.label":                    "Elegir idioma",
		"action.login":                    "Iniciar sesión",
		"action.signup":                   "Crear cuenta",
		"footer.powered":                  "Trackeo · Base del API:",
		"footer.location":                 "Con sede en Atlanta, GA · Escalando por Sudamérica con socios locales.",
		"hero.eyebrow":                    "Inteligencia atlética latinoamericana",
		"hero.title":                      "Trackeo conecta federaciones, entrenadores y aficionados en las Américas.",
		"hero.description":                "Explora actuaciones verificadas, noticias multilingües e insights premium que destacan el auge del atletismo de São Paulo a Bogotá. Construido en Atlanta para el continente.",
		"hero.explore":                    "Explorar como invitado",
		"hero.subscribe":                  "Ver planes para entrenadores",
		"preview.title":                   "Enfoque regional",
		"preview.subtitle":                "19 federaciones transmitiendo parciales y heat sheets en vivo.",
		"preview.metric_meets":            "Competencias verificadas",
		"preview.metric_athletes":         "Atletas monitoreados",
		"preview.metric_rosters":          "Actualizaciones de planteles",
		"search.title":                    "Busca en el universo de Trackeo",
		"search.subtitle":                 "Encuentra atletas, eventos, planteles y noticias bilingües en un solo lugar.",
		"search.placeholder":              "Busca un atleta, club o torneo",
		"search.aria":                     "Buscar en Trackeo",
		"search.filters":                  "Categorías de búsqueda",
		"search.filter_all":               "Todo",
		"search.filter_athletes":          "Atletas",
		"search.filter_events":            "Eventos",
		"search.filter_rosters":           "Planteles",
		"search.filter_news":              "Noticias",
		"search.empty":                    "Comienza a escribir para explorar el universo de datos de Trackeo.",
		"search.no_results":               "Sin coincidencias. Ajusta tus filtros o revisa la ortografía.",
		"home.athletes_title":             "Atletas",
		"home.athletes_subtitle":          "Explora el plantel o destaca a una promesa de tu federación.",
		"home.athletes_seed":              "Recargar atletas de ejemplo",
		"home.athletes_form_title":        "Crear perfil de atleta",
		"home.athletes_submit":            "Registrar atleta",
		"home.athletes_empty":             "Aún no se han registrado atletas.",
		"home.athletes_hint":              "Usa el formulario o carga atletas de ejemplo para poblar el plantel.",
		"home.events_title":               "Eventos",
		"home.events_subtitle":            "Sigue las últimas competencias de Atlanta a Buenos Aires.",
		"home.events_seed":                "Recargar eventos de ejemplo",
		"home.events_form_title":          "Programar un nuevo meeting",
		"home.events_submit":              "Crear evento",
		"home.events_empty":               "Todavía no hay eventos programados.",
		"home.events_hint":                "Usa el formulario o recarga el calendario curado de eventos.",
		"home.rosters_title":              "Planteles",
		"home.rosters_subtitle":           "Mantén los equipos alineados con elegibilidad verificada.",
		"home.rosters_empty":              "Aún no hay planteles disponibles.",
		"home.rosters_hint":               "Las federaciones cargan planteles directamente para su publicación instantánea.",
		"home.news_title":                 "Noticias",
		"home.news_subtitle":              "Cobertura bilingüe de corresponsales y socios de Trackeo.",
		"home.news_empty":                 "Todavía no se han publicado noticias.",
		"home.news_hint":                  "Sigue a Trackeo Insights para los últimos titulares.",
		"premium.title":                   "Planes para entrenadores y federaciones",
		"premium.subtitle":                "Desbloquea analíticas, mapas de calor y archivos de video según tu rol.",
		"premium.compare":                 "Comparar planes",
		"premium.guest_title":             "Invitado",
		"premium.guest_price":             "Gratis",
		"premium.guest_benefit_1":         "Calendario abierto de eventos",
		"premium.guest_benefit_2":         "Estadísticas destacadas y noticias",
		"premium.guest_benefit_3":         "Localización regional (ES/PT)",
		"premium.premium_title":           "Premium",
		"premium.premium_price":           "$9 / mes",
		"premium.premium_benefit_1":       "Historial completo y analíticas de temporada",
		"premium.premium_benefit_2":       "Biblioteca de video con marcadores",
		"premium.premium_benefit_3":       "Soporte prioritario en inglés y español",
		"premium.coach_title":             "Coach",
		"premium.coach_price":             "$29 / mes",
		"premium.coach_benefit_1":         "Sincronización de planteles con datos federativos",
		"premium.coach_benefit_2":         "Planificación y control de carga",
		"premium.coach_benefit_3":         "Invita atletas y gestiona staff",
		"home.federations_title":          "Las federaciones cargan de forma segura",
		"home.federations_subtitle":       "Socios confiables comparten actuaciones verificadas mediante las APIs de Trackeo.",
		"home.federations_cta":            "Enviar resultados oficiales",
		"home.federations_card_1_title":   "Canales verificados",
		"home.federations_card_1_body":    "Los envíos cifrados con trazabilidad garantizan precisión antes de publicar.",
		"home.federations_card_2_title":   "Infraestructura localizada",
		"home.federations_card_2_body":    "Nodos edge en São Paulo, Bogotá y Santiago reducen la latencia de carga.",
		"home.federations_card_3_title":   "Operaciones en Atlanta",
		"home.federations_card_3_body":    "Soporte desde la sede de Trackeo asegura una incorporación fluida.",
		"form.full_name":                  "Nombre completo",
		"form.full_name_placeholder":      "Jane Runner",
		"form.email":                      "Correo electrónico",
		"form.email_placeholder":          "tu@ejemplo.com",
		"form.role":                       "Rol",
		"form.role_placeholder":           "atleta",
		"form.password":                   "Contraseña",
		"form.password_placeholder":       "Password123",
		"form.event_name":                 "Nombre",
		"form.event_name_placeholder":     "Meeting de verano",
		"form.location":                   "Ubicación",
		"form.location_placeholder":       "Lisboa, Portugal",
		"form.start_date":                 "Fecha de inicio",
		"form.end_date":                   "Fecha de fin",
		"form.federation_id":              "ID de federación",
		"form.federation_id_placeholder":  "Opcional",
		"profiles.title":                  "Perfiles de atletas y staff",
		"profiles.subtitle":               "Busca cuentas federadas con historial verificado y biografías multilingües.",
		"profiles.refresh":                "Actualizar perfiles",
		"profiles.create":                 "Crear nuevo perfil",
		"profiles.list_title":             "Directorio",
		"profiles.list_subtitle":          "Datos en vivo del servicio de cuentas de Trackeo.",
		"profiles.filter_placeholder":     "Filtrar por nombre o correo",
		"profiles.filter_aria":            "Filtrar perfiles",
		"profiles.empty":                  "No se encontraron perfiles.",
		"profiles.hint":                   "Ajusta los filtros o crea una nueva cuenta desde el registro.",
		"events.title":                    "Calendario de competencias",
		"events.subtitle":                 "Monitorea meetings oficiales creados por federaciones y socios de Trackeo.",
		"events.create":                   "Programar evento",
		"events.refresh":                  "Actualizar",
		"events.list_title":               "Meetings próximos y recientes",
		"events.list_subtitle":            "Los datos provienen del servicio de eventos y se actualizan al instante.",
		"events.filter_upcoming":          "Mostrar solo próximos",
		"events.empty":                    "Aún no hay eventos publicados.",
		"events.hint":                     "Crea un meeting o solicita a tu federación que cargue el calendario oficial.",
		"rosters.title":                   "Planteles federativos",
		"rosters.subtitle":                "Controla elegibilidad, divisiones y staff con actualizaciones en vivo del servicio de planteles.",
		"rosters.refresh":                 "Actualizar planteles",
		"rosters.list_title":              "Últimos envíos",
		"rosters.list_subtitle":           "Los planteles verificados llegan mediante cargas seguras de federaciones.",
		"rosters.filter_placeholder":      "Filtrar por club o país",
		"rosters.filter_aria":             "Filtrar planteles",
		"rosters.empty":                   "Todavía no hay planteles disponibles.",
		"rosters.hint":                    "Las federaciones pueden cargar un archivo desde la vista segura.",
		"login.title":                     "Inicia sesión en Trackeo",
		"login.subtitle":                  "Usa tu correo verificado para acceder a las herramientas premium.",
		"login.submit":                    "Iniciar sesión",
		"login.switch":                    "¿Necesitas una cuenta?",
		"login.switch_link":               "Créala ahora.",
		"signup.title":                    "Crea tu cuenta Trackeo",
		"signup.subtitle":                 "Únete para gestionar planteles, seguir eventos y desbloquear analíticas.",
		"signup.tier":                     "Nivel de suscripción",
		"signup.tier_free":                "Gratis",
		"signup.tier_premium":             "Premium",
		"signup.tier_coach":               "Coach",
		"signup.tier_federation":          "Federación",
		"signup.role_fan":                 "Fan",
		"signup.role_athlete":             "Atleta",
		"signup.role_coach":               "Coach",
		"signup.role_federation":          "Federación",
		"signup.role_scout":               "Scout",
		"signup.submit":                   "Crear cuenta",
		"signup.switch":                   "¿Ya estás registrado?",
		"signup.switch_link":              "Inicia sesión.",
		"federations.title":               "Cargas seguras para federaciones",
		"federations.subtitle":            "Envía paquetes cifrados con trazabilidad y verificación automática.",
		"federations.refresh":             "Actualizar envíos",
		"federations.form_title":          "Subir archivos oficiales",
		"federations.form_subtitle":       "Proporciona un enlace firmado. Trackeo valida el checksum y procesa de forma asíncrona.",
		"federations.token":               "Token de acceso",
		"federations.token_placeholder":   "Token Bearer",
		"federations.name":                "Nombre de la federación",
		"federations.name_placeholder":    "Confederación Sudamericana",
		"federations.email_placeholder":   "contacto@federacion.org",
		"federations.payload":             "URL segura del paquete",
		"federations.payload_placeholder": "https://storage.ejemplo.com/resultados.json",
		"federations.notes":               "Notas (opcional)",
		"federations.notes_placeholder":   "Describe el evento o agrega detalles de validación",
		"federations.submit":              "Enviar para procesamiento",
		"federations.submissions_title":   "Historial de envíos",
		"federations.submissions_subtitle": "Controla el procesamiento, checksum y verificación.",
		"federations.submissions_empty":   "Aún no hay envíos. Carga tu primer archivo oficial para comenzar.",
		"about.title":                     "Acerca de Trackeo",
		"about.subtitle":                  "Construido en Atlanta y potenciado por federaciones de Latinoamérica.",
		"about.mission_title":             "Misión",
		"about.mission_subtitle":          "Potenciamos atletas con datos confiables, cobertura multilingüe y acceso equitativo.",
		"about.mission_body_1":            "Trackeo centraliza datos de competencia de 19 federaciones y ofrece insights en inglés, español y portugués.",
		"about.mission_body_2":            "Apoyamos a entrenadores con analíticas, acercamos historias a los fans y simplificamos el cumplimiento para el personal federativo.",
		"about.team_title":                "Equipo y socios",
		"about.team_subtitle":             "Colaboramos con estadísticos, periodistas y federaciones en toda la región.",
		"about.team_item_1_title":         "Sede Atlanta",
		"about.team_item_1_body":          "Producto, ingeniería y alianzas operan desde Atlanta coordinando cobertura multilingüe.",
		"about.team_item_2_title":         "Oficinas regionales",
		"about.team_item_2_body":          "Corresponsales en Bogotá, São Paulo, Santiago y Ciudad de México verifican resultados y producen noticias.",
		"about.team_item_3_title":         "Consejo federativo",
		"about.team_item_3_body":          "Un consejo asesor de líderes federativos garantiza estándares de seguridad y accesibilidad.",
	},
	"pt": {
		"badge.beta":                      "Beta",
		"nav.home":                        "Início",
		"nav.profiles":                    "Perfis",
		"nav.events":                      "Eventos",
		"nav.rosters":                     "Elencos",
		"nav.federations":                 "Federações",
		"nav.about":                       "Sobre",
		"locale.label":                    "Escolher idioma",
		"action.login":                    "Entrar",
		"action.signup":                   "Criar conta",
		"footer.powered":                  "Trackeo · Base da API:",
		"footer.location":                 "Sediada em Atlanta, GA · Expandindo pela América do Sul com parceiros locais.",
		"hero.eyebrow":                    "Inteligência do atletismo latino-americano",
		"hero.title":                      "Trackeo conecta federações, técnicos e fãs pelas Américas.",
		"hero.description":                "Explore performances verificadas, notícias multilíngues e insights premium que destacam o atletismo de São Paulo a Bogotá. Construído em Atlanta para o continente.",
		"hero.explore":                    "Explorar como convidado",
		"hero.subscribe":                  "Ver planos para técnicos",
		"preview.title":                   "Destaque regional",
		"preview.subtitle":                "19 federações transmitindo parciais e heat sheets em tempo real.",
		"preview.metric_meets":            "Competições verificadas",
		"preview.metric_athletes":         "Atletas monitorados",
		"preview.metric_rosters":          "Atualizações de elencos",
		"search.title":                    "Pesquise o universo Trackeo",
		"search.subtitle":                 "Encontre atletas, eventos, elencos e notícias bilíngues em um só lugar.",
		"search.placeholder":              "Busque por atleta, clube ou meeting",
		"search.aria":                     "Pesquisar na Trackeo",
		"search.filters":                  "Categorias de busca",
		"search.filter_all":               "Tudo",
		"search.filter_athletes":          "Atletas",
		"search.filter_events":            "Eventos",
		"search.filter_rosters":           "Elencos",
		"search.filter_news":              "Notícias",
		"search.empty":                    "Comece digitando para explorar o universo de dados da Trackeo.",
		"search.no_results":               "Nenhum resultado. Ajuste os filtros ou confira a grafia.",
		"home.athletes_title":             "Atletas",
		"home.athletes_subtitle":          "Navegue pelo elenco ou destaque um talento da sua federação.",
		"home.athletes_seed":              "Recarregar atletas de exemplo",
		"home.athletes_form_title":        "Criar perfil de atleta",
		"home.athletes_submit":            "Registrar atleta",
		"home.athletes_empty":             "Nenhum atleta registrado ainda.",
		"home.athletes_hint":              "Use o formulário ou carregue atletas de exemplo para preencher o elenco.",
		"home.events_title":               "Eventos",
		"home.events_subtitle":            "Acompanhe as competições de Atlanta a Buenos Aires.",
		"home.events_seed":                "Recarregar eventos de exemplo",
		"home.events_form_title":          "Agendar novo meeting",
		"home.events_submit":              "Criar evento",
		"home.events_empty":               "Nenhum evento agendado ainda.",
		"home.events_hint":                "Use o formulário ou recarregue o calendário curado.",
		"home.rosters_title":              "Elencos",
		"home.rosters_subtitle":           "Mantenha as equipes alinhadas com elegibilidade verificada.",
		"home.rosters_empty":              "Nenhum elenco disponível ainda.",
		"home.rosters_hint":               "Federações fazem upload direto para publicação imediata.",
		"home.news_title":                 "Notícias",
		"home.news_subtitle":              "Cobertura bilíngue com correspondentes e parceiros Trackeo.",
		"home.news_empty":                 "Nenhuma notícia publicada ainda.",
		"home.news_hint":                  "Siga o Trackeo Insights para as últimas manchetes.",
		"premium.title":                   "Planos para técnicos e federações",
		"premium.subtitle":                "Desbloqueie análises, mapas de calor e arquivos de vídeo conforme seu papel.",
		"premium.compare":                 "Comparar planos",
		"premium.guest_title":             "Convidado",
		"premium.guest_price":             "Gratuito",
		"premium.guest_benefit_1":         "Calendário aberto de eventos",
		"premium.guest_benefit_2":         "Estatísticas e notícias em destaque",
		"premium.guest_benefit_3":         "Localização regional (ES/PT)",
		"premium.premium_title":           "Premium",
		"premium.premium_price":           "US$9 / mês",
		"premium.premium_benefit_1":       "Histórico completo e análises da temporada",
		"premium.premium_benefit_2":       "Biblioteca de vídeos com marcadores",
		"premium.premium_benefit_3":       "Suporte prioritário em inglês e espanhol",
		"premium.coach_title":             "Coach",
		"premium.coach_price":             "US$29 / mês",
		"premium.coach_benefit_1":         "Sincronização de elencos com dados da federação",
		"premium.coach_benefit_2":         "Planejamento e controle de carga",
		"premium.coach_benefit_3":         "Convide atletas e gerencie equipe",
		"home.federations_title":          "Federações enviam com segurança",
		"home.federations_subtitle":       "Parceiros confiáveis compartilham performances verificadas pelas APIs da Trackeo.",
		"home.federations_cta":            "Enviar resultados oficiais",
		"home.federations_card_1_title":   "Pipelines verificados",
		"home.federations_card_1_body":    "Envios criptografados com trilhas de auditoria garantem precisão antes da publicação.",
		"home.federations_card_2_title":   "Infraestrutura local",
		"home.federations_card_2_body":    "Nós edge em São Paulo, Bogotá e Santiago reduzem a latência de upload.",
		"home.federations_card_3_title":   "Operações Atlanta",
		"home.federations_card_3_body":    "Suporte direto da sede Trackeo garante onboarding suave para toda federação.",
		"form.full_name":                  "Nome completo",
		"form.full_name_placeholder":      "Jane Runner",
		"form.email":                      "E-mail",
		"form.email_placeholder":          "voce@exemplo.com",
		"form.role":                       "Função",
		"form.role_placeholder":           "atleta",
		"form.password":                   "Senha",
		"form.password_placeholder":       "Password123",
		"form.event_name":                 "Nome",
		"form.event_name_placeholder":     "Meeting de verão",
		"form.location":                   "Local",
		"form.location_placeholder":       "Lisboa, Portugal",
		"form.start_date":                 "Data de início",
		"form.end_date":                   "Data de término",
		"form.federation_id":              "ID da federação",
		"form.federation_id_placeholder":  "Opcional",
		"profiles.title":                  "Perfis de atletas e staff",
		"profiles.subtitle":               "Pesquise contas federadas com histórico verificado e bios multilíngues.",
		"profiles.refresh":                "Atualizar perfis",
		"profiles.create":                 "Criar novo perfil",
		"profiles.list_title":             "Diretório",
		"profiles.list_subtitle":          "Dados ao vivo do serviço de contas Trackeo.",
		"profiles.filter_placeholder":     "Filtrar por nome ou e-mail",
		"profiles.filter_aria":            "Filtrar perfis",
		"profiles.empty":                  "Nenhum perfil encontrado.",
		"profiles.hint":                   "Ajuste os filtros ou crie uma nova conta na página de cadastro.",
		"events.title":                    "Calendário de competições",
		"events.subtitle":                 "Monitore meetings oficiais de federações e parceiros Trackeo.",
		"events.create":                   "Agendar evento",
		"events.refresh":                  "Atualizar",
		"events.list_title":               "Meetings futuros e recentes",
		"events.list_subtitle":            "Os dados vêm do serviço de eventos e atualizam instantaneamente.",
		"events.filter_upcoming":          "Mostrar apenas futuros",
		"events.empty":                    "Nenhum evento publicado ainda.",
		"events.hint":                     "Crie um meeting ou peça para sua federação enviar o calendário oficial.",
		"rosters.title":                   "Elencos federativos",
		"rosters.subtitle":                "Acompanhe elegibilidade, divisões e staff com atualizações ao vivo.",
		"rosters.refresh":                 "Atualizar elencos",
		"rosters.list_title":              "Últimos envios",
		"rosters.list_subtitle":           "Elencos verificados chegam por uploads seguros das federações.",
		"rosters.filter_placeholder":      "Filtrar por clube ou país",
		"rosters.filter_aria":             "Filtrar elencos",
		"rosters.empty":                   "Nenhum elenco disponível ainda.",
		"rosters.hint":                    "As federações podem enviar um arquivo pela área segura.",
		"login.title":                     "Faça login no Trackeo",
		"login.subtitle":                  "Use seu e-mail verificado para acessar as ferramentas premium.",
		"login.submit":                    "Entrar",
		"login.switch":                    "Precisa de uma conta?",
		"login.switch_link":               "Crie agora.",
		"signup.title":                    "Crie sua conta Trackeo",
		"signup.subtitle":                 "Junte-se para gerenciar elencos, acompanhar eventos e obter análises.",
		"signup.tier":                     "Plano de assinatura",
		"signup.tier_free":                "Gratuito",
		"signup.tier_premium":             "Premium",
		"signup.tier_coach":               "Coach",
		"signup.tier_federation":          "Federação",
		"signup.role_fan":                 "Fã",
		"signup.role_athlete":             "Atleta",
		"signup.role_coach":               "Coach",
		"signup.role_federation":          "Federação",
		"signup.role_scout":               "Olheiro",
		"signup.submit":                   "Criar conta",
		"signup.switch":                   "Já possui cadastro?",
		"signup.switch_link":              "Faça login.",
		"federations.title":               "Uploads seguros das federações",
		"federations.subtitle":            "Envie pacotes criptografados com trilhas de auditoria e verificação automática.",
		"federations.refresh":             "Atualizar envios",
		"federations.form_title":          "Enviar arquivos oficiais",
		"federations.form_subtitle":       "Forneça um link assinado. A Trackeo valida o checksum e processa de forma assíncrona.",
		"federations.token":               "Token de acesso",
		"federations.token_placeholder":   "Token Bearer",
		"federations.name":                "Nome da federação",
		"federations.name_placeholder":    "Confederação Sul-Americana",
		"federations.email_placeholder":   "contato@federacao.org",
		"federations.payload":             "URL segura do pacote",
		"federations.payload_placeholder": "https://storage.exemplo.com/resultados.json",
		"federations.notes":               "Notas (opcional)",
		"federations.notes_placeholder":   "Descreva o evento ou inclua detalhes de validação",
		"federations.submit":              "Enviar para processamento",
		"federations.submissions_title":   "Histórico de envios",
		"federations.submissions_subtitle": "Acompanhe processamento, checksum e verificação.",
		"federations.submissions_empty":   "Nenhum envio ainda. Faça upload do primeiro arquivo oficial.",
		"about.title":                     "Sobre a Trackeo",
		"about.subtitle":                  "Construída em Atlanta e impulsionada por federações da América Latina.",
		"about.mission_title":             "Missão",
		"about.mission_subtitle":          "Amplificamos atletas com dados confiáveis, cobertura multilíngue e acesso equitativo.",
		"about.mission_body_1":            "A Trackeo centraliza dados de competição de 19 federações e entrega insights em inglês, espanhol e português.",
		"about.mission_body_2":            "Apoiamos técnicos com análises, engajamos fãs com histórias e simplificamos a conformidade para equipes federativas.",
		"about.team_title":                "Equipe e parceiros",
		"about.team_subtitle":             "Colaboramos com estatísticos, jornalistas e federações em toda a região.",
		"about.team_item_1_title":         "Sede Atlanta",
		"about.team_item_1_body":          "Produto, engenharia e parcerias operam em Atlanta coordenando cobertura multilíngue.",
		"about.team_item_2_title":         "Bureaus regionais",
		"about.team_item_2_body":          "Correspondentes em Bogotá, São Paulo, Santiago e Cidade do México verificam resultados e produzem notícias.",
		"about.team_item_3_title":         "Conselho federativo",
		"about.team_item_3_body":          "Um conselho consultivo garante que a Trackeo atenda padrões de segurança e acessibilidade.",
	},
}
