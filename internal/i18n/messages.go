package i18n

var spanish = map[string]string{
	// navigation and layout
	"Crochet Catalog":   "Catálogo de crochet",
	"Book a Slot":       "Reservar una semana",
	"Custom Commission": "Encargo personalizado",
	"Home":              "Inicio",
	"Language":          "Idioma",
	"Back to Home":      "Volver al inicio",
	"Back to Catalog":   "Volver al catálogo",
	"Page not found":    "Página no encontrada",
	"The page you are looking for does not exist.": "La página que buscas no existe.",
	"Product not found":                            "Producto no encontrado",
	"Something went wrong":                         "Algo salió mal",

	// hero
	"Handmade Crochet Commissions": "Encargos de crochet hechos a mano",
	"Reserve your weekly time slot for custom crochet creations. Choose from our catalog or request something completely unique!": "Reserva tu semana para una creación de crochet personalizada. ¡Elige de nuestro catálogo o pide algo totalmente único!",
	"Browse Catalog Items": "Ver el catálogo",
	"Choose from pre-designed characters • $75 base fee • Faster turnaround": "Elige entre personajes prediseñados • tarifa base de $75 • entrega más rápida",
	"Made with Love": "Hecho con amor",

	// slots
	"Available Slots": "Semanas disponibles",
	"Available":       "Disponible",
	"Limited":         "Limitada",
	"Booked":          "Reservada",
	"Commission Fee:": "Tarifa del encargo:",
	"Difficulty:":     "Dificultad:",
	"%d Available":    "%d disponibles",
	"Book your weekly slot to get a custom crochet character made just for you.": "Reserva tu semana para recibir un personaje de crochet hecho solo para ti.",

	// catalog
	"Browse our catalog of possible creations. Each item is made-to-order during your booked time slot with your personal customizations.": "Explora nuestro catálogo de creaciones posibles. Cada pieza se hace por encargo durante tu semana reservada con tus personalizaciones.",
	"All":                            "Todos",
	"Book This Style":                "Reservar este estilo",
	"Request Custom Design":          "Pedir un diseño personalizado",
	"Book This Creation":             "Reservar esta creación",
	"Select Time Slot & Book":        "Elegir semana y reservar",
	"No items in this category yet.": "Todavía no hay artículos en esta categoría.",
	"Difficulty":                     "Dificultad",
	"Time Required":                  "Tiempo necesario",
	"%d hours":                       "%d horas",
	"Dimensions":                     "Dimensiones",
	"Time Slots":                     "Semanas",
	"Features":                       "Características",
	"Materials Used":                 "Materiales",
	"Tags":                           "Etiquetas",
	"%v (%d reviews)":                "%v (%d reseñas)",
	"How It Works":                   "Cómo funciona",
	"Book Your Slot":                 "Reserva tu semana",
	"Choose an available time slot and submit your order": "Elige una semana disponible y envía tu pedido",
	"Pay Deposit": "Paga el depósito",
	"50%% deposit to start, 50%% on completion":             "50%% de depósito para empezar, 50%% al terminar",
	"I Create Your Piece":                                   "Creo tu pieza",
	"Handmade during your booked week with progress photos": "Hecha a mano durante tu semana con fotos del progreso",
	"Shipped to You":                                        "Enviada a tu casa",
	"Carefully packaged and shipped to your door":           "Empaquetada con cuidado y enviada a tu puerta",

	// testimonials and footer
	"What Our Customers Say": "Lo que dicen nuestros clientes",
	"Handcrafted with love, our crochet creations bring joy and warmth to every home.": "Hechas con amor, nuestras creaciones de crochet llevan alegría y calidez a cada hogar.",
	"All rights reserved.": "Todos los derechos reservados.",

	// wizard shared
	"Continue":                               "Continuar",
	"Back":                                   "Atrás",
	"Edit Details":                           "Editar datos",
	"Your Name *":                            "Tu nombre *",
	"Email *":                                "Correo electrónico *",
	"Phone Number":                           "Teléfono",
	"Color Preferences":                      "Colores preferidos",
	"Preferred Size":                         "Tamaño preferido",
	"Choose size":                            "Elige un tamaño",
	"Special Requests":                       "Peticiones especiales",
	"Selected Week:":                         "Semana elegida:",
	"Contact:":                               "Contacto:",
	"Colors:":                                "Colores:",
	"Size:":                                  "Tamaño:",
	"Please fill in the required fields: %s": "Completa los campos obligatorios: %s",
	"Please double-check these details before confirming:":    "Revisa estos datos antes de confirmar:",
	"That week is already booked. Please choose another one.": "Esa semana ya está reservada. Elige otra.",
	"Please select a week first.":                             "Primero elige una semana.",
	"Your session has expired. Please start again.":           "Tu sesión ha caducado. Empieza de nuevo.",

	// booking wizard
	"Choose Your Magic Week":                                       "Elige tu semana mágica",
	"Select a week when I'll create your chosen catalog item!":     "¡Elige la semana en la que crearé el artículo que elijas!",
	"Catalog Item Commission: $75 base fee":                        "Encargo de catálogo: tarifa base de $75",
	"Continue to Item Details":                                     "Continuar a los detalles",
	"Choose Your Catalog Item":                                     "Elige tu artículo del catálogo",
	"Select from our available designs and customize the details!": "¡Elige entre nuestros diseños y personaliza los detalles!",
	"Select Your Design":                                           "Elige tu diseño",
	"Customization Details":                                        "Detalles de personalización",
	"Delivery Address":                                             "Dirección de entrega",
	"Street Address *":                                             "Dirección *",
	"City *":                                                       "Ciudad *",
	"State/Province *":                                             "Estado/Provincia *",
	"ZIP/Postal Code *":                                            "Código postal *",
	"Country *":                                                    "País *",
	"Back to Slots":                                                "Volver a las semanas",
	"Review & Confirm":                                             "Revisar y confirmar",
	"Almost There!":                                                "¡Casi listo!",
	"Review your catalog item booking before we make it official!": "¡Revisa tu reserva antes de hacerla oficial!",
	"Booking Summary": "Resumen de la reserva",
	"Selected Item:":  "Artículo elegido:",
	"Project Details": "Detalles del proyecto",
	"Item:":           "Artículo:",
	"Payment Process": "Proceso de pago",
	"After confirmation, I'll send you a PayPal invoice for the commission fee. Work begins once payment is received!": "Tras la confirmación te enviaré una factura de PayPal por la tarifa del encargo. ¡El trabajo empieza al recibir el pago!",
	"50%% deposit to start":               "50%% de depósito para empezar",
	"50%% balance on completion":          "50%% restante al terminar",
	"Progress photos throughout the week": "Fotos del progreso durante la semana",
	"Confirm Booking":                     "Confirmar reserva",

	// custom commission wizard
	"Custom Commission Slots": "Semanas para encargos personalizados",
	"Custom commissions require extra planning time and have a higher base fee. Select your preferred week!": "Los encargos personalizados requieren más planificación y tienen una tarifa base mayor. ¡Elige tu semana preferida!",
	"Custom Commission Fee: $95 + material costs":                                                            "Tarifa de encargo personalizado: $95 + materiales",
	"Bring Your Vision to Life": "Da vida a tu idea",
	"The more details you provide, the better I can understand and create your dream piece!": "¡Cuantos más detalles me des, mejor podré entender y crear la pieza de tus sueños!",
	"Custom Commission Details": "Detalles del encargo personalizado",
	"Project Description *":     "Descripción del proyecto *",
	"Inspiration Sources":       "Fuentes de inspiración",
	"Reference Images":          "Imágenes de referencia",
	"Upload reference images, sketches, or inspiration photos": "Sube imágenes de referencia, bocetos o fotos de inspiración",
	"%d file(s) selected": "%d archivo(s) seleccionado(s)",
	"%d file(s) attached": "%d archivo(s) adjunto(s)",
	"Complexity Level":    "Nivel de complejidad",
	"Budget Range":        "Presupuesto",
	"Preferred Deadline":  "Fecha límite preferida",
	"Review your custom commission request before submitting!": "¡Revisa tu solicitud antes de enviarla!",
	"Base Fee:": "Tarifa base:",
	"Final price will be determined based on complexity, size, and materials needed. You'll receive a detailed quote within 24 hours.": "El precio final dependerá de la complejidad, el tamaño y los materiales. Recibirás un presupuesto detallado en 24 horas.",
	"Inspiration:":      "Inspiración:",
	"Complexity:":       "Complejidad:",
	"Budget:":           "Presupuesto:",
	"Deadline:":         "Fecha límite:",
	"Reference Images:": "Imágenes de referencia:",
	"What Happens Next": "Qué pasa después",
	"I'll review your request and send a detailed quote within 24 hours": "Revisaré tu solicitud y te enviaré un presupuesto detallado en 24 horas",
	"Once approved, 50%% deposit secures your slot":                      "Una vez aprobado, un depósito del 50%% asegura tu semana",
	"I'll send progress photos throughout the creation process":          "Te enviaré fotos del progreso durante la creación",
	"Final 50%% payment due before shipping":                             "El 50%% final se paga antes del envío",
	"Custom pieces typically take 5-7 days to complete":                  "Las piezas personalizadas suelen tardar de 5 a 7 días",
	"Submit Commission Request":                                          "Enviar solicitud de encargo",

	// success page
	"Booking Confirmed!": "¡Reserva confirmada!",
	"Your magical crochet commission has been successfully booked! I'm so excited to bring your dream creation to life.": "¡Tu encargo de crochet se ha reservado con éxito! Estoy muy emocionada de dar vida a tu creación.",
	"You'll receive a confirmation email within the next few minutes with all the details.":                              "Recibirás un correo de confirmación en los próximos minutos con todos los detalles.",
	"Your reference: %s":                           "Tu referencia: %s",
	"Confirmation email with your booking details": "Correo de confirmación con los detalles de tu reserva",
	"PayPal invoice for the 50%% deposit":          "Factura de PayPal por el depósito del 50%%",
	"Progress photos while I work on your piece":   "Fotos del progreso mientras trabajo en tu pieza",
	"Your creation shipped to your door":           "Tu creación enviada a tu puerta",
	"Browse More Creations":                        "Ver más creaciones",

	// wizard errors and field labels
	"Please fill in the required fields.":                   "Completa los campos obligatorios.",
	"Some fields could not be read. Please check the form.": "No se pudieron leer algunos campos. Revisa el formulario.",
	"That action is not available at this step.":            "Esa acción no está disponible en este paso.",
	"That design is not in the catalog.":                    "Ese diseño no está en el catálogo.",
	"Catalog item":                                          "Artículo del catálogo",
	"Name":                                                  "Nombre",
	"Email":                                                 "Correo electrónico",
	"Street Address":                                        "Dirección",
	"City":                                                  "Ciudad",
	"State/Province":                                        "Estado/Provincia",
	"ZIP/Postal Code":                                       "Código postal",
	"Country":                                               "País",
	"Project Description":                                   "Descripción del proyecto",
}
