// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package page

import "github.com/adxyz/serplab/pkg/seo"

// Catalog is the built-in page set. The flawed documents keep their
// in-source hints; they are shown to the player in the code editor.
var Catalog = map[string]Page{
	"homepage": {
		ID:         "homepage",
		Name:       "Homepage TechShop.fr",
		Type:       "homepage",
		Difficulty: 3,
		HTML: `<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <!-- ERREUR: Pas de balise title -->
  <!-- ERREUR: Meta description manquante -->
</head>
<body>
  <!-- ERREUR: Pas de H1 -->
  <h2>Bienvenue sur TechShop</h2>

  <div class="hero">
    <!-- ERREUR: Image sans alt -->
    <img src="/images/hero-banner.jpg" width="1200" height="400" />
    <p>Découvrez nos produits high-tech au meilleur prix !</p>
  </div>

  <div class="content">
    <!-- ERREUR: Contenu trop court (< 300 mots) -->
    <p>Nous vendons des produits tech de qualité.</p>
    <p>Livraison rapide et SAV réactif.</p>

    <!-- ERREUR: Lien sans texte descriptif -->
    <a href="/products">Cliquez ici</a>
  </div>

  <div class="categories">
    <h2>Nos catégories</h2>
    <!-- ERREUR: Images sans alt -->
    <img src="/cat1.jpg" />
    <img src="/cat2.jpg" />
    <img src="/cat3.jpg" />
  </div>

  <!-- ERREUR: Pas de structure sémantique (header, nav, main, footer) -->
</body>
</html>`,
		CorrectHTML: `<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>TechShop.fr - Boutique High-Tech & Électronique | Livraison Rapide</title>
  <meta name="description" content="Découvrez notre sélection de produits high-tech : smartphones, ordinateurs, accessoires. Livraison rapide en 24h et SAV réactif. Prix compétitifs garantis.">
</head>
<body>
  <header>
    <nav>
      <a href="/">Accueil</a>
      <a href="/products">Produits</a>
      <a href="/contact">Contact</a>
    </nav>
  </header>

  <main>
    <h1>Votre Boutique High-Tech de Confiance</h1>

    <div class="hero">
      <img src="/images/hero-banner.jpg" alt="Sélection de produits high-tech : smartphone, laptop et écouteurs sans fil" width="1200" height="400" />
      <p>Découvrez nos produits high-tech au meilleur prix !</p>
    </div>

    <div class="content">
      <h2>Pourquoi choisir TechShop ?</h2>
      <p>TechShop est votre partenaire high-tech depuis 2015. Nous sélectionnons pour vous les meilleurs produits électroniques du marché : smartphones dernière génération, ordinateurs portables performants, accessoires connectés et bien plus encore.</p>

      <p>Notre engagement : vous offrir des prix compétitifs, une livraison rapide en 24h partout en France, et un service après-vente réactif disponible 7j/7. Plus de 50 000 clients nous font déjà confiance.</p>

      <p>Que vous soyez un professionnel à la recherche d'équipements fiables ou un particulier passionné de nouvelles technologies, vous trouverez chez TechShop les produits qui correspondent à vos besoins et à votre budget.</p>

      <a href="/products" title="Découvrir tous nos produits high-tech">Découvrir notre catalogue de produits</a>
    </div>

    <div class="categories">
      <h2>Nos catégories</h2>
      <img src="/cat1.jpg" alt="Catégorie Smartphones et téléphones" />
      <img src="/cat2.jpg" alt="Catégorie Ordinateurs et laptops" />
      <img src="/cat3.jpg" alt="Catégorie Accessoires connectés" />
    </div>
  </main>

  <footer>
    <p>&copy; 2024 TechShop.fr - Tous droits réservés</p>
  </footer>
</body>
</html>`,
		IdealScore: 85,
		Defects: []seo.Defect{
			{
				ID:          "no-title",
				Severity:    seo.SeverityCritical,
				Title:       "Balise <title> manquante",
				Description: "La balise title est essentielle. Elle apparaît dans les résultats de recherche et dans l'onglet du navigateur.",
				Impact:      -10,
				FixCost:     5,
				Line:        19,
				Solution:    "<title>TechShop.fr - Boutique High-Tech & Électronique | Livraison Rapide</title>",
			},
			{
				ID:          "no-meta-description",
				Severity:    seo.SeverityCritical,
				Title:       "Meta description manquante",
				Description: "Sans meta description, Google génère un snippet aléatoire depuis votre contenu.",
				Impact:      -8,
				FixCost:     5,
				Line:        20,
				Solution:    `<meta name="description" content="...">`,
			},
			{
				ID:          "no-h1",
				Severity:    seo.SeverityCritical,
				Title:       "Pas de balise H1",
				Description: "Le H1 est crucial pour indiquer le sujet principal de la page à Google.",
				Impact:      -7,
				FixCost:     5,
				Line:        23,
				Solution:    "<h1>Votre Boutique High-Tech de Confiance</h1>",
			},
			{
				ID:          "images-without-alt",
				Severity:    seo.SeverityImportant,
				Title:       "4 images sans attribut alt",
				Description: "Les attributs alt aident Google à comprendre vos images et améliorent l'accessibilité.",
				Impact:      -6,
				FixCost:     4,
				Line:        28,
				Solution:    "Ajouter des attributs alt descriptifs à toutes les images",
			},
			{
				ID:          "thin-content",
				Severity:    seo.SeverityImportant,
				Title:       "Contenu trop court",
				Description: "Environ 30 mots seulement. Recommandé : 300+ mots pour un bon référencement.",
				Impact:      -5,
				FixCost:     7,
				Line:        33,
				Solution:    "Enrichir le contenu avec plus d'informations utiles",
			},
			{
				ID:          "bad-anchor-text",
				Severity:    seo.SeverityMinor,
				Title:       `Lien avec texte "Cliquez ici"`,
				Description: "Utilisez des textes de liens descriptifs pour améliorer le SEO.",
				Impact:      -2,
				FixCost:     2,
				Line:        38,
				Solution:    `<a href="/products">Découvrir notre catalogue de produits</a>`,
			},
			{
				ID:          "no-semantic-html",
				Severity:    seo.SeverityMinor,
				Title:       "Pas de structure HTML5 sémantique",
				Description: "Les balises <header>, <main>, <footer> améliorent la structure.",
				Impact:      -3,
				FixCost:     3,
				Line:        49,
				Solution:    "Utiliser les balises sémantiques HTML5",
			},
		},
	},

	"product": {
		ID:         "product",
		Name:       "Fiche Produit - iPhone 15",
		Type:       "product",
		Difficulty: 4,
		HTML: `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>iPhone</title>
  <!-- ERREUR: Title trop court et pas optimisé -->
  <meta name="description" content="iPhone à vendre">
  <!-- ERREUR: Meta description trop courte -->
</head>
<body>
  <h1>iPhone 15 Pro</h1>

  <div class="product-images">
    <!-- ERREUR: Images produit sans alt -->
    <img src="/iphone-1.jpg">
    <img src="/iphone-2.jpg">
    <img src="/iphone-3.jpg">
  </div>

  <div class="product-info">
    <!-- ERREUR: Pas de schema.org markup -->
    <p class="price">999€</p>
    <p class="availability">En stock</p>

    <!-- ERREUR: Description produit trop courte -->
    <h2>Description</h2>
    <p>Nouveau iPhone 15 Pro avec puce A17.</p>

    <!-- ERREUR: Pas de reviews/ratings -->
    <!-- ERREUR: Pas de breadcrumb -->

    <button>Acheter</button>
  </div>
</body>
</html>`,
		CorrectHTML: `<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="UTF-8">
  <title>iPhone 15 Pro 256GB Titane Noir - Prix 999€ | TechShop.fr</title>
  <meta name="description" content="Achetez l'iPhone 15 Pro 256GB Titane Noir au prix de 999€. Puce A17 Pro, appareil photo 48MP, écran 120Hz. Livraison gratuite et garantie 2 ans.">

  <script type="application/ld+json">
  {
    "@context": "https://schema.org/",
    "@type": "Product",
    "name": "iPhone 15 Pro",
    "image": "https://techshop.fr/iphone-15-pro.jpg",
    "description": "iPhone 15 Pro avec puce A17 Pro",
    "brand": {
      "@type": "Brand",
      "name": "Apple"
    },
    "offers": {
      "@type": "Offer",
      "price": "999",
      "priceCurrency": "EUR",
      "availability": "https://schema.org/InStock"
    },
    "aggregateRating": {
      "@type": "AggregateRating",
      "ratingValue": "4.8",
      "reviewCount": "127"
    }
  }
  </script>
</head>
<body>
  <nav aria-label="Breadcrumb">
    <a href="/">Accueil</a> >
    <a href="/smartphones">Smartphones</a> >
    <span>iPhone 15 Pro</span>
  </nav>

  <main>
    <h1>iPhone 15 Pro 256GB Titane Noir</h1>

    <div class="product-images">
      <img src="/iphone-1.jpg" alt="iPhone 15 Pro vue de face - Écran Super Retina XDR">
      <img src="/iphone-2.jpg" alt="iPhone 15 Pro vue arrière - Triple caméra 48MP">
      <img src="/iphone-3.jpg" alt="iPhone 15 Pro couleur Titane Noir - Design premium">
    </div>

    <div class="product-info">
      <p class="price" itemProp="price">999€</p>
      <p class="availability">✓ En stock - Livraison gratuite</p>

      <h2>Description</h2>
      <div class="description">
        <p>Découvrez l'iPhone 15 Pro, le smartphone le plus avancé d'Apple. Équipé de la puce A17 Pro révolutionnaire, il offre des performances exceptionnelles pour la photo, les jeux et le multitâche.</p>

        <h3>Caractéristiques principales :</h3>
        <ul>
          <li>Puce A17 Pro gravée en 3nm pour des performances ultimes</li>
          <li>Écran Super Retina XDR 6.1" ProMotion 120Hz</li>
          <li>Système photo pro : 48MP principal + ultra grand-angle + téléobjectif</li>
          <li>Capacité 256GB pour stocker toutes vos photos et apps</li>
          <li>Autonomie toute la journée avec charge rapide</li>
          <li>Design en titane ultra-résistant</li>
        </ul>

        <p>Profitez d'une expérience utilisateur premium avec iOS 17, la 5G ultra-rapide et Face ID pour une sécurité maximale.</p>
      </div>

      <div class="ratings">
        <p>★★★★★ 4.8/5 (127 avis clients)</p>
      </div>

      <button aria-label="Ajouter l'iPhone 15 Pro au panier">Ajouter au panier</button>
    </div>
  </main>
</body>
</html>`,
		IdealScore: 90,
		Defects: []seo.Defect{
			{
				ID:          "title-not-optimized",
				Severity:    seo.SeverityCritical,
				Title:       "Title trop court et pas optimisé",
				Description: `Le title "iPhone" est trop générique. Il devrait contenir le modèle, la capacité et le prix.`,
				Impact:      -8,
				FixCost:     5,
				Line:        5,
				Solution:    "<title>iPhone 15 Pro 256GB Titane Noir - Prix 999€ | TechShop.fr</title>",
			},
			{
				ID:          "meta-desc-too-short",
				Severity:    seo.SeverityImportant,
				Title:       "Meta description trop courte",
				Description: "Seulement 18 caractères. Idéal : 120-155 caractères.",
				Impact:      -6,
				FixCost:     4,
				Line:        6,
				Solution:    "Rédiger une description détaillée avec caractéristiques clés",
			},
			{
				ID:          "no-schema-markup",
				Severity:    seo.SeverityCritical,
				Title:       "Pas de balisage Schema.org Product",
				Description: "Le Schema.org permet d'afficher le prix, la dispo et les avis dans Google.",
				Impact:      -10,
				FixCost:     8,
				Line:        10,
				Solution:    "Ajouter le JSON-LD Schema.org Product",
			},
			{
				ID:          "images-no-alt-product",
				Severity:    seo.SeverityImportant,
				Title:       "3 images produit sans alt",
				Description: "Les alt des images produit sont cruciaux pour le SEO image.",
				Impact:      -5,
				FixCost:     4,
				Line:        13,
				Solution:    "Décrire précisément chaque vue du produit",
			},
			{
				ID:          "thin-product-description",
				Severity:    seo.SeverityImportant,
				Title:       "Description produit insuffisante",
				Description: "Description trop courte. Détaillez les caractéristiques pour améliorer le SEO.",
				Impact:      -7,
				FixCost:     7,
				Line:        15,
				Solution:    "Rédiger 200-300 mots avec caractéristiques détaillées",
			},
			{
				ID:          "no-breadcrumb",
				Severity:    seo.SeverityMinor,
				Title:       "Pas de fil d'Ariane (breadcrumb)",
				Description: "Le breadcrumb aide Google à comprendre la structure du site.",
				Impact:      -3,
				FixCost:     3,
				Line:        12,
				Solution:    "Ajouter navigation: Accueil > Smartphones > iPhone 15 Pro",
			},
			{
				ID:          "no-reviews",
				Severity:    seo.SeverityMinor,
				Title:       "Pas d'avis clients",
				Description: "Les avis clients améliorent la confiance et le SEO.",
				Impact:      -4,
				FixCost:     3,
				Line:        15,
				Solution:    "Afficher les notes et avis clients",
			},
		},
	},

	"blog": {
		ID:         "blog",
		Name:       "Article Blog - Guide Smartphone",
		Type:       "blog",
		Difficulty: 3,
		HTML: `<!DOCTYPE html>
<html>
<head>
  <!-- ERREUR: Title trop générique -->
  <title>Comment choisir son smartphone</title>
  <!-- ERREUR: Meta description trop courte -->
  <meta name="description" content="Guide pour bien choisir son smartphone">
</head>
<body>
  <h1>Comment choisir son smartphone</h1>

  <!-- ERREUR: Pas de balise <time> pour la date -->
  <p>Publié le 15 mars 2024</p>

  <!-- ERREUR: Pas de balise <article> -->
  <div class="content">
    <!-- ERREUR: Contenu trop court (< 300 mots) -->
    <p>Choisir un smartphone peut être difficile.</p>
    <p>Voici quelques conseils.</p>

    <!-- ERREUR: Pas de sous-titres H2 -->
    <!-- ERREUR: Pas d'image -->
    <!-- ERREUR: Pas de liens internes -->
  </div>
</body>
</html>`,
		CorrectHTML: `<!DOCTYPE html>
<html lang="fr">
<head>
  <title>Comment Choisir son Smartphone en 2024 - Guide Complet | TechShop</title>
  <meta name="description" content="Découvrez notre guide complet pour choisir le meilleur smartphone en 2024 : budget, performances, appareil photo. Conseils d'experts TechShop.">
</head>
<body>
  <article>
    <h1>Comment Choisir son Smartphone en 2024</h1>

    <time datetime="2024-03-15">Publié le 15 mars 2024</time>

    <div class="content">
      <p>Choisir un smartphone adapté à vos besoins n'est pas toujours évident face à l'offre pléthorique. Entre les différentes marques, systèmes d'exploitation et gammes de prix, il est facile de s'y perdre. Ce guide vous aidera à faire le bon choix.</p>

      <h2>1. Définissez votre budget</h2>
      <p>Les smartphones sont disponibles de 150€ à plus de 1500€. Définissez d'abord votre budget pour cibler les modèles adaptés. Les smartphones milieu de gamme (300-600€) offrent aujourd'hui un excellent rapport qualité-prix.</p>

      <h2>2. Choisissez votre système d'exploitation</h2>
      <p>iOS pour iPhone ou Android pour les autres marques. iOS offre une intégration parfaite avec l'écosystème Apple, Android propose plus de choix et de personnalisation.</p>

      <h2>3. Les critères essentiels</h2>
      <p>Taille d'écran, qualité photo, autonomie, puissance : nos experts ont testé plus de 50 modèles pour vous aider.</p>

      <p>Découvrez notre <a href="/smartphones">sélection de smartphones</a> testés par nos soins.</p>
    </div>
  </article>
</body>
</html>`,
		IdealScore: 75,
		Defects: []seo.Defect{
			{
				ID:          "blog-title-generic",
				Severity:    seo.SeverityImportant,
				Title:       "Title trop générique",
				Description: "Le title manque de mots-clés et de contexte (année, marque du site).",
				Impact:      -5,
				FixCost:     4,
				Line:        5,
				Solution:    "<title>Comment Choisir son Smartphone en 2024 - Guide Complet | TechShop</title>",
			},
			{
				ID:          "blog-meta-short",
				Severity:    seo.SeverityImportant,
				Title:       "Meta description trop courte",
				Description: "40 caractères seulement. Idéal : 120-155 caractères.",
				Impact:      -4,
				FixCost:     4,
				Line:        6,
				Solution:    "Rédiger description détaillée avec mots-clés",
			},
			{
				ID:          "blog-no-article-tag",
				Severity:    seo.SeverityMinor,
				Title:       "Pas de balise <article>",
				Description: "Un article de blog devrait utiliser la balise sémantique <article>.",
				Impact:      -2,
				FixCost:     2,
				Line:        14,
				Solution:    "Encadrer le contenu avec <article></article>",
			},
			{
				ID:          "blog-thin-content",
				Severity:    seo.SeverityCritical,
				Title:       "Contenu trop court",
				Description: "Environ 15 mots. Un article de blog doit faire 500+ mots minimum.",
				Impact:      -8,
				FixCost:     8,
				Line:        15,
				Solution:    "Rédiger un contenu complet avec plusieurs sections",
			},
			{
				ID:          "blog-no-h2",
				Severity:    seo.SeverityImportant,
				Title:       "Pas de sous-titres H2",
				Description: "Structurez votre contenu avec des H2 pour le SEO et la lisibilité.",
				Impact:      -5,
				FixCost:     4,
				Line:        15,
				Solution:    "Ajouter des H2 pour chaque section",
			},
			{
				ID:          "blog-no-internal-links",
				Severity:    seo.SeverityMinor,
				Title:       "Pas de liens internes",
				Description: "Les liens internes renforcent votre maillage SEO.",
				Impact:      -3,
				FixCost:     2,
				Line:        15,
				Solution:    "Ajouter des liens vers d'autres pages du site",
			},
		},
	},

	"contact": {
		ID:         "contact",
		Name:       "Page Contact",
		Type:       "contact",
		Difficulty: 2,
		HTML: `<!DOCTYPE html>
<html>
<head>
  <!-- ERREUR: Title trop court -->
  <title>Contact</title>
  <!-- ERREUR: Meta description manquante -->
</head>
<body>
  <h1>Contactez-nous</h1>

  <!-- ERREUR: Pas d'informations de contact structurées -->
  <p>Email : contact@example.com</p>
  <p>Téléphone : 01 23 45 67 89</p>

  <!-- ERREUR: Pas de Schema LocalBusiness -->

  <form>
    <!-- ERREUR: Formulaire sans labels accessibles -->
    <input type="text" placeholder="Nom">
    <input type="email" placeholder="Email">
    <textarea placeholder="Message"></textarea>
    <button>Envoyer</button>
  </form>
</body>
</html>`,
		CorrectHTML: `<!DOCTYPE html>
<html lang="fr">
<head>
  <title>Nous Contacter - TechShop.fr | Support Client 7j/7</title>
  <meta name="description" content="Contactez TechShop : support client disponible 7j/7, email, téléphone, chat en ligne. Réponse sous 24h. Adresse : 123 rue du Commerce, Paris.">

  <script type="application/ld+json">
  {
    "@context": "https://schema.org",
    "@type": "LocalBusiness",
    "name": "TechShop",
    "telephone": "+33-1-23-45-67-89",
    "email": "contact@techshop.fr",
    "address": {
      "@type": "PostalAddress",
      "streetAddress": "123 rue du Commerce",
      "addressLocality": "Paris",
      "postalCode": "75001",
      "addressCountry": "FR"
    },
    "openingHours": "Mo-Fr 09:00-18:00"
  }
  </script>
</head>
<body>
  <main>
    <h1>Contactez-nous</h1>

    <p>Notre équipe est à votre écoute pour répondre à toutes vos questions sur nos produits, commandes ou service après-vente.</p>

    <div class="contact-info" itemscope itemtype="https://schema.org/LocalBusiness">
      <h2>Nos coordonnées</h2>

      <div>
        <h3>Email</h3>
        <p itemprop="email">
          <a href="mailto:contact@techshop.fr">contact@techshop.fr</a>
        </p>
        <p>Réponse sous 24h</p>
      </div>

      <div>
        <h3>Téléphone</h3>
        <p itemprop="telephone">
          <a href="tel:+33123456789">01 23 45 67 89</a>
        </p>
        <p>Du lundi au vendredi, 9h-18h</p>
      </div>

      <div itemprop="address" itemscope itemtype="https://schema.org/PostalAddress">
        <h3>Adresse</h3>
        <p>
          <span itemprop="streetAddress">123 rue du Commerce</span><br>
          <span itemprop="postalCode">75001</span> <span itemprop="addressLocality">Paris</span><br>
          <span itemprop="addressCountry">France</span>
        </p>
      </div>
    </div>

    <form>
      <h2>Formulaire de contact</h2>

      <div>
        <label for="name">Nom complet</label>
        <input type="text" id="name" name="name" required>
      </div>

      <div>
        <label for="email">Adresse email</label>
        <input type="email" id="email" name="email" required>
      </div>

      <div>
        <label for="message">Votre message</label>
        <textarea id="message" name="message" rows="5" required></textarea>
      </div>

      <button type="submit">Envoyer votre message</button>
    </form>
  </main>
</body>
</html>`,
		IdealScore: 60,
		Defects: []seo.Defect{
			{
				ID:          "contact-title-short",
				Severity:    seo.SeverityImportant,
				Title:       "Title trop court",
				Description: `Le title "Contact" est trop générique. Ajoutez le nom de votre entreprise et des mots-clés.`,
				Impact:      -5,
				FixCost:     4,
				Line:        5,
				Solution:    "<title>Nous Contacter - TechShop.fr | Support Client 7j/7</title>",
			},
			{
				ID:          "contact-no-meta",
				Severity:    seo.SeverityImportant,
				Title:       "Meta description manquante",
				Description: "Ajoutez une meta description mentionnant vos coordonnées et horaires.",
				Impact:      -4,
				FixCost:     4,
				Line:        6,
				Solution:    `<meta name="description" content="Contactez TechShop : support client disponible 7j/7...">`,
			},
			{
				ID:          "contact-no-schema",
				Severity:    seo.SeverityCritical,
				Title:       "Pas de Schema LocalBusiness",
				Description: "Le Schema LocalBusiness aide Google à afficher vos coordonnées dans les résultats.",
				Impact:      -8,
				FixCost:     8,
				Line:        7,
				Solution:    "Ajouter JSON-LD Schema LocalBusiness avec adresse et contact",
			},
			{
				ID:          "contact-poor-structure",
				Severity:    seo.SeverityMinor,
				Title:       "Informations de contact non structurées",
				Description: "Utilisez des balises sémantiques et microdata pour structurer vos coordonnées.",
				Impact:      -3,
				FixCost:     3,
				Line:        10,
				Solution:    "Utiliser itemscope/itemprop pour structurer les données",
			},
			{
				ID:          "contact-form-accessibility",
				Severity:    seo.SeverityMinor,
				Title:       "Formulaire sans labels",
				Description: "Les champs de formulaire doivent avoir des <label> pour l'accessibilité et le SEO.",
				Impact:      -2,
				FixCost:     2,
				Line:        16,
				Solution:    `Ajouter <label for="..."> pour chaque champ`,
			},
		},
	},

	"category": {
		ID:         "category",
		Name:       "Page Catégorie - Smartphones",
		Type:       "category",
		Difficulty: 3,
		HTML: `<!DOCTYPE html>
<html>
<head>
  <!-- ERREUR: Title trop court et pas optimisé -->
  <title>Smartphones</title>
  <!-- ERREUR: Meta description manquante -->
</head>
<body>
  <!-- ERREUR: H2 au lieu de H1 -->
  <h2>Smartphones</h2>

  <!-- ERREUR: Contenu trop court -->
  <p>Découvrez nos smartphones.</p>

  <!-- ERREUR: Pas de breadcrumb -->

  <div class="products">
    <!-- ERREUR: Images produits sans alt -->
    <div class="product">
      <img src="/iphone.jpg">
      <h3>iPhone 15 Pro</h3>
      <p>999€</p>
    </div>
    <div class="product">
      <img src="/samsung.jpg">
      <h3>Samsung S24</h3>
      <p>849€</p>
    </div>
  </div>

  <!-- ERREUR: Pas de filtres/options de tri -->
  <!-- ERREUR: Pas de pagination -->
</body>
</html>`,
		CorrectHTML: `<!DOCTYPE html>
<html lang="fr">
<head>
  <title>Smartphones - Plus de 50 Modèles Android & iPhone | TechShop.fr</title>
  <meta name="description" content="Achetez votre smartphone parmi notre sélection de 50+ modèles : iPhone, Samsung, Google Pixel. Prix de 299€ à 1499€. Livraison gratuite dès 50€.">
</head>
<body>
  <nav aria-label="Breadcrumb">
    <a href="/">Accueil</a> >
    <span>Smartphones</span>
  </nav>

  <main>
    <h1>Smartphones</h1>

    <div class="category-intro">
      <p>Découvrez notre sélection complète de smartphones pour tous les budgets. Des modèles d'entrée de gamme aux flagships premium, trouvez le téléphone qui correspond à vos besoins.</p>

      <p>Notre catalogue comprend les derniers modèles iPhone d'Apple, les smartphones Samsung Galaxy, les Google Pixel, ainsi que des marques comme Xiaomi, OnePlus et Oppo. Tous nos smartphones sont neufs, garantis constructeur, et livrés rapidement.</p>
    </div>

    <div class="filters">
      <h2>Filtrer par</h2>
      <select aria-label="Filtrer par marque">
        <option>Toutes les marques</option>
        <option>Apple</option>
        <option>Samsung</option>
        <option>Google</option>
      </select>
      <select aria-label="Filtrer par prix">
        <option>Tous les prix</option>
        <option>Moins de 300€</option>
        <option>300€ - 600€</option>
        <option>Plus de 600€</option>
      </select>
    </div>

    <div class="products">
      <div class="product">
        <img src="/iphone.jpg" alt="iPhone 15 Pro - Smartphone Apple 256GB Titane">
        <h3>iPhone 15 Pro</h3>
        <p>999€</p>
        <a href="/product/iphone-15-pro">Voir le produit</a>
      </div>
      <div class="product">
        <img src="/samsung.jpg" alt="Samsung Galaxy S24 - Smartphone Android 128GB">
        <h3>Samsung Galaxy S24</h3>
        <p>849€</p>
        <a href="/product/samsung-s24">Voir le produit</a>
      </div>
    </div>

    <div class="pagination">
      <a href="?page=1" aria-label="Page 1">1</a>
      <a href="?page=2" aria-label="Page 2">2</a>
      <a href="?page=3" aria-label="Page 3">3</a>
    </div>
  </main>
</body>
</html>`,
		IdealScore: 75,
		Defects: []seo.Defect{
			{
				ID:          "category-title-short",
				Severity:    seo.SeverityCritical,
				Title:       "Title trop court et générique",
				Description: `Le title "Smartphones" manque de contexte. Ajoutez le nombre de produits, les marques et le nom du site.`,
				Impact:      -7,
				FixCost:     5,
				Line:        5,
				Solution:    "<title>Smartphones - Plus de 50 Modèles Android & iPhone | TechShop.fr</title>",
			},
			{
				ID:          "category-no-meta",
				Severity:    seo.SeverityCritical,
				Title:       "Meta description manquante",
				Description: "Une page catégorie doit avoir une description attrayante mentionnant les marques et prix.",
				Impact:      -6,
				FixCost:     5,
				Line:        6,
				Solution:    "Ajouter meta description avec marques, gamme de prix et USP",
			},
			{
				ID:          "category-h2-instead-h1",
				Severity:    seo.SeverityImportant,
				Title:       "H2 utilisé au lieu de H1",
				Description: "Chaque page doit avoir un H1 unique. Remplacez le H2 par un H1.",
				Impact:      -5,
				FixCost:     4,
				Line:        9,
				Solution:    "<h1>Smartphones</h1>",
			},
			{
				ID:          "category-thin-content",
				Severity:    seo.SeverityImportant,
				Title:       "Contenu de catégorie insuffisant",
				Description: "Les pages catégories doivent avoir du contenu descriptif (100+ mots) pour le SEO.",
				Impact:      -6,
				FixCost:     7,
				Line:        12,
				Solution:    "Ajouter paragraphes descriptifs sur la catégorie",
			},
			{
				ID:          "category-no-breadcrumb",
				Severity:    seo.SeverityMinor,
				Title:       "Pas de fil d'Ariane",
				Description: "Un breadcrumb aide les utilisateurs et Google à comprendre la structure du site.",
				Impact:      -3,
				FixCost:     3,
				Line:        8,
				Solution:    "Ajouter breadcrumb : Accueil > Smartphones",
			},
			{
				ID:          "category-images-no-alt",
				Severity:    seo.SeverityImportant,
				Title:       "Images produits sans alt",
				Description: "Les vignettes produits doivent avoir des alt descriptifs incluant la marque et le modèle.",
				Impact:      -4,
				FixCost:     4,
				Line:        18,
				Solution:    `Ajouter alt="Marque Modèle - Description" à chaque image`,
			},
			{
				ID:          "category-no-filters",
				Severity:    seo.SeverityMinor,
				Title:       "Pas de système de filtres",
				Description: "Les filtres améliorent l'UX et peuvent créer des URLs indexables.",
				Impact:      -2,
				FixCost:     2,
				Line:        14,
				Solution:    "Ajouter filtres par marque, prix, caractéristiques",
			},
		},
	},

	"about": {
		ID:         "about",
		Name:       "Page À Propos",
		Type:       "about",
		Difficulty: 1,
		HTML: `<!DOCTYPE html>
<html>
<head>
  <!-- ERREUR: Title avec faute d'orthographe et pas optimisé -->
  <title>A propos</title>
  <!-- ERREUR: Meta description manquante -->
</head>
<body>
  <h1>À propos de TechShop</h1>

  <!-- ERREUR: Contenu très insuffisant -->
  <p>TechShop existe depuis 2015.</p>

  <!-- ERREUR: Pas de Schema Organization -->
  <!-- ERREUR: Pas de contenu trust (équipe, mission, valeurs) -->
</body>
</html>`,
		CorrectHTML: `<!DOCTYPE html>
<html lang="fr">
<head>
  <title>À Propos de TechShop - Notre Histoire & Engagement | Depuis 2015</title>
  <meta name="description" content="Découvrez l'histoire de TechShop, boutique high-tech de confiance depuis 2015. Notre mission : rendre la technologie accessible avec expertise et service client d'excellence.">

  <script type="application/ld+json">
  {
    "@context": "https://schema.org",
    "@type": "Organization",
    "name": "TechShop",
    "url": "https://techshop.fr",
    "logo": "https://techshop.fr/logo.png",
    "foundingDate": "2015",
    "description": "Boutique en ligne spécialisée en produits high-tech et électronique grand public",
    "sameAs": [
      "https://facebook.com/techshop",
      "https://twitter.com/techshop",
      "https://instagram.com/techshop"
    ]
  }
  </script>
</head>
<body>
  <main>
    <h1>À propos de TechShop</h1>

    <article>
      <section>
        <h2>Notre Histoire</h2>
        <p>TechShop a été fondé en 2015 par une équipe de passionnés de nouvelles technologies, avec une mission simple : rendre les produits high-tech de qualité accessibles à tous, accompagnés d'un service client exceptionnel.</p>

        <p>Depuis nos débuts, nous avons accompagné plus de 50 000 clients dans le choix de leurs équipements technologiques. Notre expertise et notre écoute nous ont permis de devenir une référence dans la vente en ligne de produits high-tech en France.</p>
      </section>

      <section>
        <h2>Notre Mission</h2>
        <p>Nous croyons que la technologie doit simplifier la vie, pas la compliquer. C'est pourquoi nous sélectionnons rigoureusement chaque produit de notre catalogue, offrons des conseils d'experts gratuits, et assurons un service après-vente réactif disponible 7 jours sur 7.</p>
      </section>

      <section>
        <h2>Nos Valeurs</h2>
        <ul>
          <li><strong>Expertise :</strong> Notre équipe teste personnellement les produits avant de les proposer</li>
          <li><strong>Transparence :</strong> Prix clairs, avis clients authentiques, pas de frais cachés</li>
          <li><strong>Service :</strong> Support client disponible, livraison rapide, garanties étendues</li>
          <li><strong>Confiance :</strong> Plus de 50 000 clients satisfaits, note moyenne de 4.8/5</li>
        </ul>
      </section>

      <section>
        <h2>Notre Équipe</h2>
        <p>TechShop, c'est une équipe de 25 personnes passionnées basée à Paris, incluant des conseillers techniques, experts en logistique et spécialistes du service client, tous dédiés à votre satisfaction.</p>
      </section>
    </article>
  </main>
</body>
</html>`,
		IdealScore: 65,
		Defects: []seo.Defect{
			{
				ID:          "about-title-typo",
				Severity:    seo.SeverityImportant,
				Title:       "Title avec faute et pas optimisé",
				Description: `Faute : "A propos" au lieu de "À propos". Le title manque aussi de contexte et mots-clés.`,
				Impact:      -5,
				FixCost:     4,
				Line:        5,
				Solution:    "<title>À Propos de TechShop - Notre Histoire & Engagement | Depuis 2015</title>",
			},
			{
				ID:          "about-no-meta",
				Severity:    seo.SeverityImportant,
				Title:       "Meta description manquante",
				Description: `La page "À propos" doit avoir une meta description présentant l'histoire et les valeurs.`,
				Impact:      -4,
				FixCost:     4,
				Line:        6,
				Solution:    "Ajouter meta description avec histoire, mission et année de création",
			},
			{
				ID:          "about-no-schema-org",
				Severity:    seo.SeverityCritical,
				Title:       "Pas de Schema Organization",
				Description: "Le Schema Organization aide Google à comprendre votre entreprise (date création, réseaux sociaux, etc.).",
				Impact:      -7,
				FixCost:     8,
				Line:        7,
				Solution:    "Ajouter JSON-LD Schema Organization",
			},
			{
				ID:          "about-thin-content",
				Severity:    seo.SeverityCritical,
				Title:       "Contenu très insuffisant",
				Description: `Une page "À propos" doit détailler l'histoire, la mission, les valeurs et l'équipe (200+ mots).`,
				Impact:      -8,
				FixCost:     8,
				Line:        11,
				Solution:    "Développer : histoire, mission, valeurs, équipe, chiffres clés",
			},
		},
	},
}
